package mysql

// COALESCE keeps the stored value when a partial enrichment (coords only,
// photo refs only) is written.
const upsertEnrichmentSQL = `
INSERT INTO restaurant_enrichment
  (restaurant_id, lat, lng, photo_refs)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  lat        = COALESCE(VALUES(lat), lat),
  lng        = COALESCE(VALUES(lng), lng),
  photo_refs = COALESCE(VALUES(photo_refs), photo_refs),
  updated_at = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO enrich_misses (restaurant_id, kind, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE reason = VALUES(reason), seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getEnrichmentSQL = `
SELECT restaurant_id, lat, lng, photo_refs, updated_at
FROM restaurant_enrichment
WHERE restaurant_id = ?
`

const listEnrichmentsSQL = `
SELECT restaurant_id, lat, lng, photo_refs, updated_at
FROM restaurant_enrichment
ORDER BY restaurant_id
`

// The admin list is a single wholesale document.
const upsertAdminSnapshotSQL = `
INSERT INTO admin_snapshot (id, payload)
VALUES (1, ?)
ON DUPLICATE KEY UPDATE payload = VALUES(payload)
`

const getAdminSnapshotSQL = `SELECT payload FROM admin_snapshot WHERE id = 1`
