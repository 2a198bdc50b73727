package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrMalformedPayload is returned when the upstream payload is not a JSON array of records
var ErrMalformedPayload = errors.New("doctor payload is not a list")

// RawDoctor is a doctor entry as returned by the upstream data source, before normalization.
// Every scalar field tolerates strings, numbers, booleans and null so that one odd field
// never rejects the whole record.
type RawDoctor struct {
	ID           FlexString      `json:"id,omitempty"`
	Name         FlexString      `json:"name,omitempty"`
	Experience   FlexString      `json:"experience,omitempty"`
	Fees         FlexString      `json:"fees,omitempty"`
	Specialities []RawSpeciality `json:"specialities,omitempty"`
	Specialty    FlexStrings     `json:"specialty,omitempty"`
	VideoConsult FlexBool        `json:"video_consult"`
	InClinic     FlexBool        `json:"in_clinic"`
	Photo        FlexString      `json:"photo,omitempty"`
	Clinic       *RawClinic      `json:"clinic,omitempty"`
	Introduction FlexString      `json:"doctor_introduction,omitempty"`
}

type RawClinic struct {
	Name    FlexString  `json:"name,omitempty"`
	Address *RawAddress `json:"address,omitempty"`
}

type RawAddress struct {
	Locality FlexString `json:"locality,omitempty"`
}

// RawSpeciality accepts either {"name": "..."} or a bare string.
type RawSpeciality struct {
	Name FlexString `json:"name"`
}

func (s *RawSpeciality) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Name FlexString `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			*s = RawSpeciality{}
			return nil
		}
		s.Name = obj.Name
		return nil
	}
	return s.Name.UnmarshalJSON(data)
}

// FlexString decodes any JSON scalar into its string form. Objects and arrays decode as "".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(s)
	case 'n', '{', '[':
		*f = ""
	default:
		// numbers and booleans keep their literal text
		*f = FlexString(data)
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FlexStrings decodes either a single string or a list of strings.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []FlexString
		if err := json.Unmarshal(data, &items); err != nil {
			*f = nil
			return nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item != "" {
				out = append(out, string(item))
			}
		}
		*f = out
		return nil
	}

	var single FlexString
	_ = single.UnmarshalJSON(data)
	if single == "" {
		*f = nil
		return nil
	}
	*f = FlexStrings{string(single)}
	return nil
}

// FlexBool decodes JSON booleans, and also "true"/"false"/1/0 style values.
// Anything unrecognized is false.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var s FlexString
	_ = s.UnmarshalJSON(data)
	b, err := strconv.ParseBool(string(s))
	if err != nil {
		*f = false
		return nil
	}
	*f = FlexBool(b)
	return nil
}
