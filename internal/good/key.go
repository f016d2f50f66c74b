// Package good maps vendor materials onto the GOOD (Genshin Open Object
// Description) interchange schema and writes the export document.
package good

import (
	"regexp"
	"strings"
)

var (
	wordSplit = regexp.MustCompile(`[- ]`)
	nonWord   = regexp.MustCompile(`\W`)
)

// Key converts a vendor display name into a GOOD material key: words split on
// spaces and hyphens, each capitalized, concatenated, punctuation stripped.
// "Dvalin's Claw" becomes DvalinsClaw, "A Flower Yet to Bloom" AFlowerYetToBloom.
func Key(name string) string {
	name = strings.Trim(strings.TrimSpace(name), `"`)
	words := wordSplit.Split(name, -1)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return nonWord.ReplaceAllString(strings.Join(words, ""), "")
}
