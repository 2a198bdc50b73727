package entity

import "time"

// DoctorListing is the Postgres mirror of one upstream doctor record.
// Raw text fields are stored unparsed so that reading the mirror goes through the same normalization.
type DoctorListing struct {
	ID           string    `gorm:"type:varchar(100);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Experience   string    `gorm:"type:varchar(255)" json:"experience"`
	Fees         string    `gorm:"type:varchar(100)" json:"fees"`
	Specialities []string  `gorm:"type:jsonb;serializer:json" json:"specialities"`
	VideoConsult bool      `gorm:"not null;default:false" json:"video_consult"`
	InClinic     bool      `gorm:"not null;default:false" json:"in_clinic"`
	Photo        string    `gorm:"type:text" json:"photo,omitempty"`
	ClinicName   string    `gorm:"type:varchar(255)" json:"clinic_name,omitempty"`
	Locality     string    `gorm:"type:varchar(255)" json:"locality,omitempty"`
	Introduction string    `gorm:"type:text" json:"doctor_introduction,omitempty"`
	Position     int       `gorm:"not null;index" json:"position"`
	SyncedAt     time.Time `gorm:"not null" json:"synced_at"`
}

func (DoctorListing) TableName() string {
	return "doctor_listings"
}
