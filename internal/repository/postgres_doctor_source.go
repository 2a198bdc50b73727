package repository

import (
	"context"
	"errors"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrMirrorEmpty is returned when the postgres source is selected but nothing was mirrored yet
var ErrMirrorEmpty = errors.New("doctor mirror is empty")

type postgresDoctorSource struct {
	db          *gorm.DB
	log         *logrus.Logger
	listingRepo domainRepo.DoctorListingRepository
}

// NewPostgresDoctorSource serves the directory from the doctor_listings mirror.
func NewPostgresDoctorSource(db *gorm.DB, log *logrus.Logger, listingRepo domainRepo.DoctorListingRepository) domainRepo.DoctorSource {
	return &postgresDoctorSource{
		db:          db,
		log:         log,
		listingRepo: listingRepo,
	}
}

func (s *postgresDoctorSource) FetchDoctors(ctx context.Context) ([]entity.RawDoctor, error) {
	db := s.db.WithContext(ctx)

	count, err := s.listingRepo.Count(db)
	if err != nil {
		s.log.Warnf("Failed to count doctor listings: %+v", err)
		return nil, err
	}
	if count == 0 {
		return nil, ErrMirrorEmpty
	}

	listings, err := s.listingRepo.FindAll(db)
	if err != nil {
		s.log.Warnf("Failed to read doctor listings: %+v", err)
		return nil, err
	}

	raws := make([]entity.RawDoctor, len(listings))
	for i, listing := range listings {
		raws[i] = converter.ListingToRawDoctor(listing)
	}

	s.log.WithField("count", len(raws)).Info("Loaded doctors from postgres mirror")
	return raws, nil
}
