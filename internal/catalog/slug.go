package catalog

import (
	"regexp"
	"strings"
)

var accentFolder = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"ì", "i", "í", "i", "î", "i", "ï", "i",
	"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
	"ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ç", "c",
)

var repeatedHyphens = regexp.MustCompile(`-+`)

// Slug lowercases name, folds the accented Latin letters of the fold table
// and drops everything outside [a-z0-9]. Word boundaries are lost, so two
// names can share a slug: "L'Ami Jean" and "LAmi Jean" both give "lamijean".
func Slug(name string) string {
	s := accentFolder.Replace(strings.ToLower(name))
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)
	s = repeatedHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
