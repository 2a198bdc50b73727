package directory

import (
	"slices"

	"doctor-directory/internal/domain/entity"
)

// Specialties returns every distinct specialty name across doctors, sorted.
func Specialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, doctor := range doctors {
		for _, specialty := range doctor.Specialties {
			if _, ok := seen[specialty]; ok {
				continue
			}
			seen[specialty] = struct{}{}
			names = append(names, specialty)
		}
	}
	slices.Sort(names)
	return names
}
