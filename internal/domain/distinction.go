package domain

import "fmt"

type DistinctionKind string

const (
	MichelinStars     DistinctionKind = "michelin"
	BibGourmand       DistinctionKind = "bib-gourmand"
	AssiettePick      DistinctionKind = "assiette-michelin"
	FiftyBest         DistinctionKind = "50-best"
	GaultMillauToques DistinctionKind = "gault-millau"
	OtherDistinction  DistinctionKind = "other"
)

// Distinction is the structured form of a free-text award label.
// Level is the star count for MichelinStars and the toque count for
// GaultMillauToques (0 when the label carries no count); 0 otherwise.
type Distinction struct {
	Kind  DistinctionKind `json:"kind"`
	Level int             `json:"level,omitempty"`
	Label string          `json:"label"`
}

// Key is the filter tag identifier, e.g. "michelin-2" or "gault-millau-4".
func (d Distinction) Key() string {
	switch d.Kind {
	case MichelinStars, GaultMillauToques:
		if d.Level > 0 {
			return fmt.Sprintf("%s-%d", d.Kind, d.Level)
		}
	}
	return string(d.Kind)
}
