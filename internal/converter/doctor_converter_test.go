package converter_test

import (
	"encoding/json"
	"testing"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDoctors_UpstreamRecord(t *testing.T) {
	payload := `[{
		"name": "Dr. Amit Shah",
		"experience": "10 Years of experience",
		"fees": "₹ 500",
		"specialities": [{"name": "Dentist"}],
		"video_consult": true,
		"in_clinic": false
	}]`
	var raws []entity.RawDoctor
	require.NoError(t, json.Unmarshal([]byte(payload), &raws))

	doctors := converter.NormalizeDoctors(raws)

	require.Len(t, doctors, 1)
	d := doctors[0]
	assert.Equal(t, "Dr. Amit Shah", d.Name)
	assert.Equal(t, []string{"Dentist"}, d.Specialties)
	assert.Equal(t, 10, d.ExperienceYears)
	assert.Equal(t, 500, d.FeeAmount)
	assert.True(t, d.SupportsVideo)
	assert.False(t, d.SupportsInClinic)
	assert.NotEmpty(t, d.ID)
}

func TestNormalizeDoctor_DisplayFields(t *testing.T) {
	raw := entity.RawDoctor{
		ID:           " 17 ",
		Name:         "Dr. Priya Nair",
		Photo:        "https://example.com/p.png",
		Introduction: "MBBS, MD",
		Clinic: &entity.RawClinic{
			Name:    "City Care",
			Address: &entity.RawAddress{Locality: "Indiranagar"},
		},
		VideoConsult: true,
		InClinic:     true,
	}

	d := converter.NormalizeDoctor(raw, 0)

	assert.Equal(t, "17", d.ID)
	assert.Equal(t, "MBBS, MD", d.Qualification)
	assert.Equal(t, "City Care", d.ClinicName)
	assert.Equal(t, "Indiranagar", d.Locality)
	assert.Equal(t, "https://example.com/p.png", d.PhotoURL)
	assert.Equal(t, entity.ConsultationTypeBoth, d.ConsultationType())
}

func TestNormalizeDoctor_DefaultsForMissingFields(t *testing.T) {
	d := converter.NormalizeDoctor(entity.RawDoctor{}, 3)

	assert.Equal(t, entity.UnknownDoctorName, d.Name)
	assert.NotNil(t, d.Specialties)
	assert.Empty(t, d.Specialties)
	assert.Zero(t, d.ExperienceYears)
	assert.Zero(t, d.FeeAmount)
	assert.False(t, d.SupportsVideo)
	assert.False(t, d.SupportsInClinic)
	assert.Empty(t, d.ClinicName)
	assert.Empty(t, d.Locality)
	assert.NotEmpty(t, d.ID)
}

func TestNormalizeDoctor_FallbackIDIsDeterministic(t *testing.T) {
	raw := entity.RawDoctor{Name: "Dr. Sana Khan"}

	first := converter.NormalizeDoctor(raw, 4)
	again := converter.NormalizeDoctor(raw, 4)
	elsewhere := converter.NormalizeDoctor(raw, 5)

	assert.Equal(t, first.ID, again.ID)
	assert.NotEqual(t, first.ID, elsewhere.ID)
}

func TestNormalizeDoctor_LegacySpecialtyFallback(t *testing.T) {
	d := converter.NormalizeDoctor(entity.RawDoctor{Specialty: entity.FlexStrings{"Dentist", " ENT "}}, 0)
	assert.Equal(t, []string{"Dentist", "ENT"}, d.Specialties)

	// an explicit specialities list wins, even when empty
	d = converter.NormalizeDoctor(entity.RawDoctor{
		Specialities: []entity.RawSpeciality{},
		Specialty:    entity.FlexStrings{"Dentist"},
	}, 0)
	assert.Empty(t, d.Specialties)
}

func TestParseExperienceYears(t *testing.T) {
	tests := map[string]int{
		"10 Years of experience":        10,
		"Experience: 3 yrs":             3,
		"15+ years, 2 clinics":          15,
		"":                              0,
		"fresh graduate":                0,
		"99999999999999999999999 years": 0,
	}
	for text, want := range tests {
		assert.Equal(t, want, converter.ParseExperienceYears(text), text)
	}
}

func TestParseFeeAmount(t *testing.T) {
	tests := map[string]int{
		"₹ 500":          500,
		"₹600":           600,
		"Fee: $ 45":      45,
		"€120 per visit": 120,
		"500":            0,
		"Rs. 500":        0,
		"":               0,
		"₹ free":         0,
		"₹ 1,200":        1,
	}
	for text, want := range tests {
		assert.Equal(t, want, converter.ParseFeeAmount(text), text)
	}
}

func TestDoctorsToResponses(t *testing.T) {
	responses := converter.DoctorsToResponses([]entity.Doctor{
		{ID: "1", Name: "A", SupportsVideo: true},
		{ID: "2", Name: "B", Specialties: []string{"Dentist"}, SupportsInClinic: true},
	})

	require.Len(t, responses, 2)
	assert.Equal(t, "Video", responses[0].ConsultationType)
	assert.NotNil(t, responses[0].Specialties)
	assert.Equal(t, "In-clinic", responses[1].ConsultationType)
	assert.Nil(t, converter.DoctorToResponse(nil))
}

func TestCriteriaToResponse(t *testing.T) {
	resp := converter.CriteriaToResponse(entity.FilterCriteria{
		SearchText:       "amit",
		ConsultationMode: entity.ConsultationModeVideo,
		SortKey:          entity.SortKeyFees,
	})

	assert.Equal(t, "amit", resp.SearchText)
	assert.Equal(t, []string{}, resp.SelectedSpecialties)
	assert.Equal(t, "Video", resp.ConsultationMode)
	assert.Equal(t, "fees", resp.SortKey)
}

func TestListingRoundTripNormalizesTheSame(t *testing.T) {
	raw := entity.RawDoctor{
		Name:         "Dr. Rahul Mehta",
		Experience:   "12 Years of experience",
		Fees:         "₹ 800",
		Specialities: []entity.RawSpeciality{{Name: "Dermatologist"}},
		InClinic:     true,
		Clinic:       &entity.RawClinic{Name: "Skin First", Address: &entity.RawAddress{Locality: "HSR"}},
	}
	original := converter.NormalizeDoctor(raw, 2)
	syncedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	listing := converter.RawDoctorToListing(raw, original.ID, 2, syncedAt)
	restored := converter.NormalizeDoctor(converter.ListingToRawDoctor(listing), listing.Position)

	assert.Equal(t, original.ID, listing.ID)
	assert.Equal(t, syncedAt, listing.SyncedAt)
	assert.Equal(t, original, restored)
}
