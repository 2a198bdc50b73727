// Package directory holds the pure filter, sort, suggestion and query-string logic of the doctor directory.
// Every function here is deterministic and leaves its inputs untouched.
package directory

import (
	"strings"

	"doctor-directory/internal/domain/entity"
)

// Filter returns the doctors matching every active predicate of criteria, in input order.
func Filter(doctors []entity.Doctor, criteria entity.FilterCriteria) []entity.Doctor {
	matched := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if Matches(doctor, criteria) {
			matched = append(matched, doctor)
		}
	}
	return matched
}

// Matches reports whether a single doctor passes criteria.
func Matches(doctor entity.Doctor, criteria entity.FilterCriteria) bool {
	return matchesSearch(doctor, strings.ToLower(criteria.SearchText)) &&
		matchesSpecialties(doctor, criteria.SelectedSpecialties) &&
		matchesConsultationMode(doctor, criteria.ConsultationMode)
}

func matchesSearch(doctor entity.Doctor, lowerSearch string) bool {
	if lowerSearch == "" {
		return true
	}
	return strings.Contains(strings.ToLower(doctor.Name), lowerSearch)
}

// matchesSpecialties has OR semantics across the selected specialties.
func matchesSpecialties(doctor entity.Doctor, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, specialty := range selected {
		if doctor.HasSpecialty(specialty) {
			return true
		}
	}
	return false
}

func matchesConsultationMode(doctor entity.Doctor, mode entity.ConsultationMode) bool {
	switch mode {
	case entity.ConsultationModeVideo:
		return doctor.SupportsVideo
	case entity.ConsultationModeInClinic:
		return doctor.SupportsInClinic
	default:
		return true
	}
}
