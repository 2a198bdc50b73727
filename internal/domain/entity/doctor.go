package entity

// UnknownDoctorName is used when an upstream record carries no name
const UnknownDoctorName = "Unknown Doctor"

// ConsultationType is the display label for the consultation capability of a doctor
type ConsultationType string

const (
	ConsultationTypeNone     ConsultationType = ""
	ConsultationTypeVideo    ConsultationType = "Video"
	ConsultationTypeInClinic ConsultationType = "In-clinic"
	ConsultationTypeBoth     ConsultationType = "Both"
)

// Doctor is the canonical, normalized doctor record used by filtering, sorting and suggestions.
// A Doctor is never mutated once it is part of a directory snapshot.
type Doctor struct {
	ID               string
	Name             string
	Specialties      []string
	ExperienceYears  int
	FeeAmount        int
	SupportsVideo    bool
	SupportsInClinic bool

	// Display only
	Qualification string
	ClinicName    string
	Locality      string
	PhotoURL      string
}

// ConsultationType derives the display label from the capability flags.
func (d Doctor) ConsultationType() ConsultationType {
	switch {
	case d.SupportsVideo && d.SupportsInClinic:
		return ConsultationTypeBoth
	case d.SupportsVideo:
		return ConsultationTypeVideo
	case d.SupportsInClinic:
		return ConsultationTypeInClinic
	default:
		return ConsultationTypeNone
	}
}

// HasSpecialty reports whether the doctor lists the given specialty (exact match).
func (d Doctor) HasSpecialty(specialty string) bool {
	for _, s := range d.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}
