package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"
)

// DoctorSource fetches the raw doctor list from wherever the directory is backed.
type DoctorSource interface {
	FetchDoctors(ctx context.Context) ([]entity.RawDoctor, error)
}
