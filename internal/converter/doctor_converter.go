package converter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	digitsPattern = regexp.MustCompile(`\d+`)
	feePattern    = regexp.MustCompile(`\p{Sc}\s*(\d+)`)

	// doctorIDNamespace seeds the fallback IDs of records that arrive without one
	doctorIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("doctor-directory/doctors"))
)

// NormalizeDoctors converts raw upstream records into canonical doctors.
// Output has one doctor per input record, in input order.
func NormalizeDoctors(raws []entity.RawDoctor) []entity.Doctor {
	doctors := make([]entity.Doctor, len(raws))
	for i, raw := range raws {
		doctors[i] = NormalizeDoctor(raw, i)
	}
	return doctors
}

// NormalizeDoctor converts one raw record. position is the record's index in the upstream list
// and only matters for records without an upstream ID.
func NormalizeDoctor(raw entity.RawDoctor, position int) entity.Doctor {
	name := strings.TrimSpace(raw.Name.String())
	if name == "" {
		name = entity.UnknownDoctorName
	}

	id := strings.TrimSpace(raw.ID.String())
	if id == "" {
		id = fallbackDoctorID(position, name)
	}

	doctor := entity.Doctor{
		ID:               id,
		Name:             name,
		Specialties:      rawSpecialties(raw),
		ExperienceYears:  ParseExperienceYears(raw.Experience.String()),
		FeeAmount:        ParseFeeAmount(raw.Fees.String()),
		SupportsVideo:    bool(raw.VideoConsult),
		SupportsInClinic: bool(raw.InClinic),
		Qualification:    strings.TrimSpace(raw.Introduction.String()),
		PhotoURL:         strings.TrimSpace(raw.Photo.String()),
	}

	if raw.Clinic != nil {
		doctor.ClinicName = strings.TrimSpace(raw.Clinic.Name.String())
		if raw.Clinic.Address != nil {
			doctor.Locality = strings.TrimSpace(raw.Clinic.Address.Locality.String())
		}
	}

	return doctor
}

// ParseExperienceYears returns the first run of digits in text, or 0.
func ParseExperienceYears(text string) int {
	match := digitsPattern.FindString(text)
	if match == "" {
		return 0
	}
	return atoiOrZero(match)
}

// ParseFeeAmount returns the first run of digits that follows a currency symbol, or 0.
func ParseFeeAmount(text string) int {
	match := feePattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return 0
	}
	return atoiOrZero(match[1])
}

func atoiOrZero(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func rawSpecialties(raw entity.RawDoctor) []string {
	specialties := make([]string, 0, len(raw.Specialities))
	if raw.Specialities != nil {
		for _, s := range raw.Specialities {
			if name := strings.TrimSpace(s.Name.String()); name != "" {
				specialties = append(specialties, name)
			}
		}
		return specialties
	}

	for _, s := range raw.Specialty {
		if name := strings.TrimSpace(s); name != "" {
			specialties = append(specialties, name)
		}
	}
	return specialties
}

func fallbackDoctorID(position int, name string) string {
	return uuid.NewSHA1(doctorIDNamespace, []byte(fmt.Sprintf("%d:%s", position, name))).String()
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := doctorResponse(*doctor)
	return &resp
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = doctorResponse(doctor)
	}
	return responses
}

func doctorResponse(doctor entity.Doctor) dto.DoctorResponse {
	specialties := doctor.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return dto.DoctorResponse{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Specialties:      specialties,
		ExperienceYears:  doctor.ExperienceYears,
		FeeAmount:        doctor.FeeAmount,
		ConsultationType: string(doctor.ConsultationType()),
		SupportsVideo:    doctor.SupportsVideo,
		SupportsInClinic: doctor.SupportsInClinic,
		Qualification:    doctor.Qualification,
		ClinicName:       doctor.ClinicName,
		Locality:         doctor.Locality,
		PhotoURL:         doctor.PhotoURL,
	}
}

// CriteriaToResponse converts FilterCriteria to CriteriaResponse DTO
func CriteriaToResponse(criteria entity.FilterCriteria) dto.CriteriaResponse {
	selected := criteria.SelectedSpecialties
	if selected == nil {
		selected = []string{}
	}

	return dto.CriteriaResponse{
		SearchText:          criteria.SearchText,
		SelectedSpecialties: selected,
		ConsultationMode:    string(criteria.ConsultationMode),
		SortKey:             string(criteria.SortKey),
	}
}

// RawDoctorToListing converts a raw record to its mirror row. id is the canonical doctor ID.
func RawDoctorToListing(raw entity.RawDoctor, id string, position int, syncedAt time.Time) entity.DoctorListing {
	listing := entity.DoctorListing{
		ID:           id,
		Name:         raw.Name.String(),
		Experience:   raw.Experience.String(),
		Fees:         raw.Fees.String(),
		Specialities: rawSpecialties(raw),
		VideoConsult: bool(raw.VideoConsult),
		InClinic:     bool(raw.InClinic),
		Photo:        raw.Photo.String(),
		Introduction: raw.Introduction.String(),
		Position:     position,
		SyncedAt:     syncedAt,
	}

	if raw.Clinic != nil {
		listing.ClinicName = raw.Clinic.Name.String()
		if raw.Clinic.Address != nil {
			listing.Locality = raw.Clinic.Address.Locality.String()
		}
	}

	return listing
}

// ListingToRawDoctor converts a mirror row back into a raw record.
func ListingToRawDoctor(listing entity.DoctorListing) entity.RawDoctor {
	specialities := make([]entity.RawSpeciality, len(listing.Specialities))
	for i, name := range listing.Specialities {
		specialities[i] = entity.RawSpeciality{Name: entity.FlexString(name)}
	}

	return entity.RawDoctor{
		ID:           entity.FlexString(listing.ID),
		Name:         entity.FlexString(listing.Name),
		Experience:   entity.FlexString(listing.Experience),
		Fees:         entity.FlexString(listing.Fees),
		Specialities: specialities,
		VideoConsult: entity.FlexBool(listing.VideoConsult),
		InClinic:     entity.FlexBool(listing.InClinic),
		Photo:        entity.FlexString(listing.Photo),
		Introduction: entity.FlexString(listing.Introduction),
		Clinic: &entity.RawClinic{
			Name:    entity.FlexString(listing.ClinicName),
			Address: &entity.RawAddress{Locality: entity.FlexString(listing.Locality)},
		},
	}
}
