package directory

import (
	"net/url"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// Query-string parameter names
const (
	QueryParamSearch       = "q"
	QueryParamConsultation = "consult"
	QueryParamSpecialties  = "specialties"
	QueryParamSort         = "sort"
)

const specialtySeparator = ","

// EncodeQuery serializes criteria into a canonical query string (no leading '?').
// Default values are omitted, so default criteria encode to "".
func EncodeQuery(criteria entity.FilterCriteria) string {
	if criteria.IsDefault() {
		return ""
	}

	values := url.Values{}

	if criteria.SearchText != "" {
		values.Set(QueryParamSearch, criteria.SearchText)
	}
	if criteria.ConsultationMode != entity.ConsultationModeNone {
		values.Set(QueryParamConsultation, string(criteria.ConsultationMode))
	}
	if specialties := nonEmpty(criteria.SelectedSpecialties); len(specialties) > 0 {
		values.Set(QueryParamSpecialties, strings.Join(specialties, specialtySeparator))
	}
	if criteria.SortKey != entity.SortKeyNone {
		values.Set(QueryParamSort, string(criteria.SortKey))
	}

	return values.Encode()
}

// DecodeQuery parses a query string, with or without the leading '?'.
// It never fails: malformed pairs, unknown keys and unrecognized values fall back to defaults.
func DecodeQuery(rawQuery string) entity.FilterCriteria {
	rawQuery = strings.TrimPrefix(rawQuery, "?")

	// ParseQuery keeps every pair it could parse alongside the first error
	values, _ := url.ParseQuery(rawQuery)
	return ParseQuery(values)
}

// ParseQuery builds criteria from already parsed query values.
func ParseQuery(values url.Values) entity.FilterCriteria {
	return entity.FilterCriteria{
		SearchText:          values.Get(QueryParamSearch),
		SelectedSpecialties: splitSpecialties(values.Get(QueryParamSpecialties)),
		ConsultationMode:    entity.ParseConsultationMode(values.Get(QueryParamConsultation)),
		SortKey:             entity.ParseSortKey(values.Get(QueryParamSort)),
	}
}

func splitSpecialties(joined string) []string {
	if joined == "" {
		return nil
	}

	var specialties []string
	seen := make(map[string]struct{})
	for _, segment := range strings.Split(joined, specialtySeparator) {
		if segment == "" {
			continue
		}
		if _, ok := seen[segment]; ok {
			continue
		}
		seen[segment] = struct{}{}
		specialties = append(specialties, segment)
	}
	return specialties
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
