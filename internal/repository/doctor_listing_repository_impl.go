package repository

import (
	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"

	"gorm.io/gorm"
)

const listingBatchSize = 200

type doctorListingRepository struct{}

func NewDoctorListingRepository() domainRepo.DoctorListingRepository {
	return &doctorListingRepository{}
}

// ReplaceAll swaps the whole mirror for listings inside one transaction.
func (r *doctorListingRepository) ReplaceAll(db *gorm.DB, listings []entity.DoctorListing) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.DoctorListing{}).Error; err != nil {
			return err
		}
		if len(listings) == 0 {
			return nil
		}
		return tx.CreateInBatches(listings, listingBatchSize).Error
	})
}

func (r *doctorListingRepository) FindAll(db *gorm.DB) ([]entity.DoctorListing, error) {
	var listings []entity.DoctorListing
	err := db.Order("position ASC").Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *doctorListingRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.DoctorListing{}).Count(&count).Error
	return count, err
}
