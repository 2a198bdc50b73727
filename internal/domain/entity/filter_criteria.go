package entity

// ConsultationMode is the consultation filter dimension. At most one mode is active.
type ConsultationMode string

const (
	ConsultationModeNone     ConsultationMode = ""
	ConsultationModeVideo    ConsultationMode = "Video"
	ConsultationModeInClinic ConsultationMode = "In-clinic"
)

// SortKey selects the ordering of the visible doctors. At most one key is active.
type SortKey string

const (
	SortKeyNone       SortKey = ""
	SortKeyExperience SortKey = "experience"
	SortKeyFees       SortKey = "fees"
)

// FilterCriteria holds the active search/filter/sort selections of one browsing session.
// The zero value is the default criteria: everything visible, input order.
type FilterCriteria struct {
	SearchText          string
	SelectedSpecialties []string
	ConsultationMode    ConsultationMode
	SortKey             SortKey
}

// IsDefault reports whether no selection is active.
func (c FilterCriteria) IsDefault() bool {
	return c.SearchText == "" &&
		len(c.SelectedSpecialties) == 0 &&
		c.ConsultationMode == ConsultationModeNone &&
		c.SortKey == SortKeyNone
}

func (c FilterCriteria) HasSpecialty(specialty string) bool {
	for _, s := range c.SelectedSpecialties {
		if s == specialty {
			return true
		}
	}
	return false
}

func (c *FilterCriteria) SetSearchText(text string) {
	c.SearchText = text
}

// ToggleSpecialty selects the specialty if it is not selected yet, otherwise deselects it.
func (c *FilterCriteria) ToggleSpecialty(specialty string) {
	if specialty == "" {
		return
	}
	if !c.HasSpecialty(specialty) {
		c.SelectedSpecialties = append(c.SelectedSpecialties, specialty)
		return
	}

	selected := make([]string, 0, len(c.SelectedSpecialties)-1)
	for _, s := range c.SelectedSpecialties {
		if s != specialty {
			selected = append(selected, s)
		}
	}
	c.SelectedSpecialties = selected
}

// ToggleConsultationMode selects mode; selecting the active mode clears it.
func (c *FilterCriteria) ToggleConsultationMode(mode ConsultationMode) {
	if c.ConsultationMode == mode {
		c.ConsultationMode = ConsultationModeNone
		return
	}
	c.ConsultationMode = mode
}

// ToggleSortKey selects key; selecting the active key clears it.
func (c *FilterCriteria) ToggleSortKey(key SortKey) {
	if c.SortKey == key {
		c.SortKey = SortKeyNone
		return
	}
	c.SortKey = key
}

func (c *FilterCriteria) Reset() {
	*c = FilterCriteria{}
}

// ParseConsultationMode maps a query value onto a mode. Unrecognized values are None.
func ParseConsultationMode(value string) ConsultationMode {
	switch ConsultationMode(value) {
	case ConsultationModeVideo:
		return ConsultationModeVideo
	case ConsultationModeInClinic:
		return ConsultationModeInClinic
	default:
		return ConsultationModeNone
	}
}

// ParseSortKey maps a query value onto a sort key. Unrecognized values are None.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortKeyExperience:
		return SortKeyExperience
	case SortKeyFees:
		return SortKeyFees
	default:
		return SortKeyNone
	}
}
