package directory

import (
	"cmp"
	"slices"

	"doctor-directory/internal/domain/entity"
)

// Sort returns a new slice ordered by key. Ties keep their input order.
func Sort(doctors []entity.Doctor, key entity.SortKey) []entity.Doctor {
	sorted := slices.Clone(doctors)
	if sorted == nil {
		sorted = []entity.Doctor{}
	}

	switch key {
	case entity.SortKeyExperience:
		slices.SortStableFunc(sorted, func(a, b entity.Doctor) int {
			return cmp.Compare(b.ExperienceYears, a.ExperienceYears)
		})
	case entity.SortKeyFees:
		slices.SortStableFunc(sorted, func(a, b entity.Doctor) int {
			return cmp.Compare(a.FeeAmount, b.FeeAmount)
		})
	}

	return sorted
}

// Apply filters then sorts, which is what the listing view shows.
func Apply(doctors []entity.Doctor, criteria entity.FilterCriteria) []entity.Doctor {
	return Sort(Filter(doctors, criteria), criteria.SortKey)
}
