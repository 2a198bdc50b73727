package dto

// Request DTOs

type SuggestionRequest struct {
	Query string `validate:"omitempty,max=100"`
	Limit int    `validate:"omitempty,min=1,max=20"`
}

// CriteriaActionRequest applies one filter interaction to the criteria encoded in Query.
type CriteriaActionRequest struct {
	Query  string `json:"query" validate:"omitempty,max=2048"`
	Action string `json:"action" validate:"required,oneof=set_search select_suggestion toggle_specialty toggle_consult toggle_sort reset"`
	Value  string `json:"value" validate:"omitempty,max=255"`
}

// Response DTOs

type DoctorResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Specialties      []string `json:"specialties"`
	ExperienceYears  int      `json:"experience_years"`
	FeeAmount        int      `json:"fee_amount"`
	ConsultationType string   `json:"consultation_type,omitempty"`
	SupportsVideo    bool     `json:"supports_video"`
	SupportsInClinic bool     `json:"supports_in_clinic"`
	Qualification    string   `json:"qualification,omitempty"`
	ClinicName       string   `json:"clinic_name,omitempty"`
	Locality         string   `json:"locality,omitempty"`
	PhotoURL         string   `json:"photo_url,omitempty"`
}

type CriteriaResponse struct {
	SearchText          string   `json:"search_text"`
	SelectedSpecialties []string `json:"selected_specialties"`
	ConsultationMode    string   `json:"consultation_mode,omitempty"`
	SortKey             string   `json:"sort_key,omitempty"`
}

type DirectoryResponse struct {
	Doctors     []DoctorResponse `json:"doctors"`
	Total       int              `json:"total"`
	Specialties []string         `json:"specialties"`
	Criteria    CriteriaResponse `json:"criteria"`
	Query       string           `json:"query"`
}

type SuggestionListResponse struct {
	Suggestions []DoctorResponse `json:"suggestions"`
	Visible     bool             `json:"visible"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type DirectoryStatusResponse struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
	Total int    `json:"total"`
}
