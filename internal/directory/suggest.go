package directory

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"doctor-directory/internal/domain/entity"
)

// DefaultSuggestionLimit is the number of suggestions shown under the search box
const DefaultSuggestionLimit = 3

// Suggest ranks doctors whose name contains query (case-insensitive).
// Earlier match positions rank first, then shorter names, then input order.
// An empty result means the suggestion list should be hidden.
func Suggest(doctors []entity.Doctor, query string, limit int) []entity.Doctor {
	if query == "" {
		return []entity.Doctor{}
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	type candidate struct {
		doctor     entity.Doctor
		matchIndex int
		nameLength int
	}

	lowerQuery := strings.ToLower(query)
	candidates := make([]candidate, 0)
	for _, doctor := range doctors {
		lowerName := strings.ToLower(doctor.Name)
		idx := strings.Index(lowerName, lowerQuery)
		if idx < 0 {
			continue
		}
		// ToLower maps rune to rune, so the rune offset in lowerName is the offset in Name
		candidates = append(candidates, candidate{
			doctor:     doctor,
			matchIndex: utf8.RuneCountInString(lowerName[:idx]),
			nameLength: utf8.RuneCountInString(doctor.Name),
		})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(a.matchIndex, b.matchIndex); c != 0 {
			return c
		}
		return cmp.Compare(a.nameLength, b.nameLength)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]entity.Doctor, len(candidates))
	for i, c := range candidates {
		suggestions[i] = c.doctor
	}
	return suggestions
}
