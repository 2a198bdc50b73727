package directory_test

import (
	"net/url"
	"testing"

	"doctor-directory/internal/directory"
	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuery_DefaultCriteriaIsEmpty(t *testing.T) {
	assert.Equal(t, "", directory.EncodeQuery(entity.FilterCriteria{}))
}

func TestDecodeQuery_EmptyStringIsDefault(t *testing.T) {
	assert.True(t, directory.DecodeQuery("").IsDefault())
	assert.True(t, directory.DecodeQuery("?").IsDefault())
}

func TestEncodeQuery_AllFields(t *testing.T) {
	criteria := entity.FilterCriteria{
		SearchText:          "amit shah",
		SelectedSpecialties: []string{"Dentist", "General Physician"},
		ConsultationMode:    entity.ConsultationModeInClinic,
		SortKey:             entity.SortKeyExperience,
	}

	encoded := directory.EncodeQuery(criteria)

	values, err := url.ParseQuery(encoded)
	require.NoError(t, err)
	assert.Equal(t, "amit shah", values.Get("q"))
	assert.Equal(t, "In-clinic", values.Get("consult"))
	assert.Equal(t, "Dentist,General Physician", values.Get("specialties"))
	assert.Equal(t, "experience", values.Get("sort"))
	assert.Equal(t, "consult=In-clinic&q=amit+shah&sort=experience&specialties=Dentist%2CGeneral+Physician", encoded)
}

func TestEncodeQuery_OmitsDefaults(t *testing.T) {
	encoded := directory.EncodeQuery(entity.FilterCriteria{SortKey: entity.SortKeyFees})

	assert.Equal(t, "sort=fees", encoded)
}

func TestQuery_RoundTrip(t *testing.T) {
	tests := []entity.FilterCriteria{
		{},
		{SearchText: "Dr. Amit"},
		{SearchText: "a&b=c?d"},
		{SelectedSpecialties: []string{"Dentist"}},
		{SelectedSpecialties: []string{"Ear-Nose-Throat (ENT) Specialist", "Dentist", "Ayurveda"}},
		{ConsultationMode: entity.ConsultationModeVideo},
		{ConsultationMode: entity.ConsultationModeInClinic, SortKey: entity.SortKeyFees},
		{
			SearchText:          "priya",
			SelectedSpecialties: []string{"Homeopath", "Dietitian/Nutritionist"},
			ConsultationMode:    entity.ConsultationModeVideo,
			SortKey:             entity.SortKeyExperience,
		},
	}

	for _, criteria := range tests {
		decoded := directory.DecodeQuery(directory.EncodeQuery(criteria))
		assert.Equal(t, criteria, decoded)
	}
}

func TestQuery_EncodeDecodeEncodeIsCanonical(t *testing.T) {
	encoded := directory.EncodeQuery(entity.FilterCriteria{
		SearchText:          "nair",
		SelectedSpecialties: []string{"Dentist", "Cardiologist"},
		SortKey:             entity.SortKeyFees,
	})

	assert.Equal(t, encoded, directory.EncodeQuery(directory.DecodeQuery(encoded)))
	assert.Equal(t, encoded, directory.EncodeQuery(directory.DecodeQuery("?"+encoded)))
}

func TestDecodeQuery_IsTolerant(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  entity.FilterCriteria
	}{
		{
			name:  "unknown keys ignored",
			query: "page=2&q=shah&utm_source=mail",
			want:  entity.FilterCriteria{SearchText: "shah"},
		},
		{
			name:  "empty specialty segments dropped",
			query: "specialties=,Dentist,,Cardiologist,",
			want:  entity.FilterCriteria{SelectedSpecialties: []string{"Dentist", "Cardiologist"}},
		},
		{
			name:  "only separators",
			query: "specialties=,,,",
			want:  entity.FilterCriteria{},
		},
		{
			name:  "duplicate specialties collapse",
			query: "specialties=Dentist,Dentist",
			want:  entity.FilterCriteria{SelectedSpecialties: []string{"Dentist"}},
		},
		{
			name:  "unrecognized consult is none",
			query: "consult=Phone",
			want:  entity.FilterCriteria{},
		},
		{
			name:  "consult is case sensitive",
			query: "consult=video",
			want:  entity.FilterCriteria{},
		},
		{
			name:  "unrecognized sort is none",
			query: "sort=rating&consult=Video",
			want:  entity.FilterCriteria{ConsultationMode: entity.ConsultationModeVideo},
		},
		{
			name:  "malformed escape keeps the other pairs",
			query: "q=%zz&sort=fees",
			want:  entity.FilterCriteria{SortKey: entity.SortKeyFees},
		},
		{
			name:  "leading question mark",
			query: "?q=rao",
			want:  entity.FilterCriteria{SearchText: "rao"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, directory.DecodeQuery(tt.query))
		})
	}
}

func TestParseQuery_UsesFirstValue(t *testing.T) {
	values := url.Values{"q": {"first", "second"}, "sort": {"experience"}}

	got := directory.ParseQuery(values)

	assert.Equal(t, "first", got.SearchText)
	assert.Equal(t, entity.SortKeyExperience, got.SortKey)
}
