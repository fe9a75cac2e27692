package porename

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultPattern matches purchase order numbers: 4 or 5, then 50, then seven
// digits.
const DefaultPattern = `(4|5)50\d{7}`

// notFoundToken replaces the identifier token when nothing matched
const notFoundToken = "ERREUR_COMMANDE"

// IdentifierSet is a sorted set of identifiers found in a document.
// An empty set means extraction failed.
type IdentifierSet []string

// NewIdentifierSet sorts ids and drops duplicates
func NewIdentifierSet(ids ...string) IdentifierSet {
	if len(ids) == 0 {
		return nil
	}
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	set := sorted[:1]
	for _, id := range sorted[1:] {
		if id != set[len(set)-1] {
			set = append(set, id)
		}
	}
	return IdentifierSet(set)
}

// Empty reports whether no identifier was found
func (s IdentifierSet) Empty() bool {
	return len(s) == 0
}

// Token joins the identifiers with "_" for use in a file name
func (s IdentifierSet) Token() string {
	return strings.Join(s, "_")
}

// FindIdentifiers returns every non-overlapping match of pattern in text
func FindIdentifiers(pattern *regexp.Regexp, text string) IdentifierSet {
	return NewIdentifierSet(pattern.FindAllString(text, -1)...)
}
