package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"guide_paris/internal/domain"
)

const (
	IconMichelin3   = "/icons/michelin-3-etoiles.svg"
	IconMichelin2   = "/icons/michelin-2-etoiles.svg"
	IconMichelin1   = "/icons/michelin-1-etoile.svg"
	IconBibGourmand = "/icons/bib-gourmand.svg"
	IconGaultMillau = "/icons/gault-millau.svg"
	IconGeneric     = "/icons/distinction.svg"
)

type labelRule struct {
	needle string
	kind   domain.DistinctionKind
	level  int
}

// Checked in order, first match wins: "3 étoiles" also contains "étoile"
// and a label may mention several awards.
var labelRules = []labelRule{
	{"3 étoiles", domain.MichelinStars, 3},
	{"2 étoiles", domain.MichelinStars, 2},
	{"1 étoile", domain.MichelinStars, 1},
	{"Bib Gourmand", domain.BibGourmand, 0},
	{"Gault", domain.GaultMillauToques, 0},
	{"Assiette", domain.AssiettePick, 0},
	{"50 Best", domain.FiftyBest, 0},
}

var toquesRe = regexp.MustCompile(`(\d)\s*toques?`)

// ParseDistinction decodes a free-text award label.
func ParseDistinction(label string) domain.Distinction {
	for _, rule := range labelRules {
		if !strings.Contains(label, rule.needle) {
			continue
		}
		d := domain.Distinction{Kind: rule.kind, Level: rule.level, Label: label}
		if rule.kind == domain.GaultMillauToques {
			d.Level = toques(label)
		}
		return d
	}
	return domain.Distinction{Kind: domain.OtherDistinction, Label: label}
}

func ParseDistinctions(labels []string) []domain.Distinction {
	if len(labels) == 0 {
		return nil
	}
	out := make([]domain.Distinction, len(labels))
	for i, l := range labels {
		out[i] = ParseDistinction(l)
	}
	return out
}

func toques(label string) int {
	m := toquesRe.FindStringSubmatch(strings.ToLower(label))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	if n < 1 || n > 5 {
		return 0
	}
	return n
}

// Icon maps a decoded distinction to its icon.
func Icon(d domain.Distinction) string {
	switch d.Kind {
	case domain.MichelinStars:
		switch d.Level {
		case 3:
			return IconMichelin3
		case 2:
			return IconMichelin2
		case 1:
			return IconMichelin1
		}
	case domain.BibGourmand:
		return IconBibGourmand
	case domain.GaultMillauToques:
		return IconGaultMillau
	}
	return IconGeneric
}

// DistinctionIcon returns the icon for a raw label.
func DistinctionIcon(label string) string { return Icon(ParseDistinction(label)) }

// DistinctionText returns the label unchanged.
func DistinctionText(label string) string { return label }
