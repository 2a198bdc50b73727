package repository

import (
	"doctor-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorListingRepository interface {
	ReplaceAll(db *gorm.DB, listings []entity.DoctorListing) error
	FindAll(db *gorm.DB) ([]entity.DoctorListing, error)
	Count(db *gorm.DB) (int64, error)
}
