package directory_test

import "doctor-directory/internal/domain/entity"

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "d1", Name: "Dr. Amit Shah", Specialties: []string{"Dentist"}, ExperienceYears: 10, FeeAmount: 500, SupportsVideo: true},
		{ID: "d2", Name: "Dr. Priya Nair", Specialties: []string{"General Physician", "Dentist"}, ExperienceYears: 15, FeeAmount: 700, SupportsInClinic: true},
		{ID: "d3", Name: "Dr. Rahul Mehta", Specialties: []string{"Dermatologist"}, ExperienceYears: 10, FeeAmount: 300, SupportsVideo: true, SupportsInClinic: true},
		{ID: "d4", Name: "Dr. Sana Khan", Specialties: nil, ExperienceYears: 2, FeeAmount: 500},
		{ID: "d5", Name: "Dr. amitabh Rao", Specialties: []string{"Cardiologist"}, ExperienceYears: 22, FeeAmount: 1000, SupportsInClinic: true},
	}
}

func ids(doctors []entity.Doctor) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.ID
	}
	return out
}

// isSubsequence reports whether sub appears in full in the same relative order.
func isSubsequence(sub, full []string) bool {
	i := 0
	for _, id := range full {
		if i < len(sub) && sub[i] == id {
			i++
		}
	}
	return i == len(sub)
}
