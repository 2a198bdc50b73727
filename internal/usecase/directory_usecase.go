package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/directory"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDirectoryNotLoaded   = errors.New("doctor directory is not loaded yet")
	ErrDirectoryUnavailable = errors.New("doctor directory unavailable")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrUnknownAction        = errors.New("unknown criteria action")
	ErrInvalidActionValue   = errors.New("invalid value for criteria action")
)

// Criteria actions accepted by ApplyAction
const (
	ActionSetSearch        = "set_search"
	ActionSelectSuggestion = "select_suggestion"
	ActionToggleSpecialty  = "toggle_specialty"
	ActionToggleConsult    = "toggle_consult"
	ActionToggleSort       = "toggle_sort"
	ActionReset            = "reset"
)

// Directory states reported by Status
const (
	DirectoryStateLoading = "loading"
	DirectoryStateReady   = "ready"
	DirectoryStateError   = "error"
)

type DirectoryUsecase interface {
	Load(ctx context.Context) error
	Status() dto.DirectoryStatusResponse
	Browse(ctx context.Context, criteria entity.FilterCriteria) (*dto.DirectoryResponse, error)
	Suggest(ctx context.Context, query string, limit int) (*dto.SuggestionListResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	ApplyAction(ctx context.Context, req *dto.CriteriaActionRequest) (*dto.DirectoryResponse, error)
}

// directoryUsecase is the browsing session: it owns the doctor snapshot fetched once by Load.
// The snapshot is published once when the fetch completes and never modified afterwards.
type directoryUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	source          repository.DoctorSource
	listingRepo     repository.DoctorListingRepository
	suggestionLimit int

	loadOnce    sync.Once
	mu          sync.RWMutex
	loaded      bool
	loadErr     error
	doctors     []entity.Doctor
	specialties []string
	byID        map[string]int
}

// NewDirectoryUsecase creates the session. db and listingRepo are optional; when both are set,
// every successful load is mirrored into Postgres.
func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	source repository.DoctorSource,
	listingRepo repository.DoctorListingRepository,
	suggestionLimit int,
) DirectoryUsecase {
	if suggestionLimit <= 0 {
		suggestionLimit = directory.DefaultSuggestionLimit
	}

	return &directoryUsecase{
		db:              db,
		log:             log,
		source:          source,
		listingRepo:     listingRepo,
		suggestionLimit: suggestionLimit,
	}
}

// Load fetches the doctor list once. Later calls wait for that fetch and return its outcome.
// Readers are never blocked by the fetch: until it finishes they get ErrDirectoryNotLoaded.
func (u *directoryUsecase) Load(ctx context.Context) error {
	u.loadOnce.Do(func() { u.load(ctx) })

	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.loadErr
}

func (u *directoryUsecase) load(ctx context.Context) {
	raws, err := u.source.FetchDoctors(ctx)
	if err != nil {
		u.log.Errorf("Failed to load doctor directory: %+v", err)
		u.mu.Lock()
		u.loadErr = fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
		u.loaded = true
		u.mu.Unlock()
		return
	}

	doctors := converter.NormalizeDoctors(raws)
	byID := make(map[string]int, len(doctors))
	for i, doctor := range doctors {
		if _, exists := byID[doctor.ID]; exists {
			u.log.Warnf("Duplicate doctor id %q at position %d", doctor.ID, i)
			continue
		}
		byID[doctor.ID] = i
	}
	specialties := directory.Specialties(doctors)

	u.mu.Lock()
	u.doctors = doctors
	u.specialties = specialties
	u.byID = byID
	u.loaded = true
	u.mu.Unlock()

	u.log.WithFields(logrus.Fields{
		"doctors":     len(doctors),
		"specialties": len(specialties),
	}).Info("Doctor directory loaded")

	u.mirror(ctx, raws, doctors)
}

// mirror copies the loaded records into Postgres. Failures never affect the session.
func (u *directoryUsecase) mirror(ctx context.Context, raws []entity.RawDoctor, doctors []entity.Doctor) {
	if u.db == nil || u.listingRepo == nil {
		return
	}

	syncedAt := time.Now().UTC()
	seen := make(map[string]struct{}, len(doctors))
	listings := make([]entity.DoctorListing, 0, len(doctors))
	for i, doctor := range doctors {
		if _, ok := seen[doctor.ID]; ok {
			continue
		}
		seen[doctor.ID] = struct{}{}
		listings = append(listings, converter.RawDoctorToListing(raws[i], doctor.ID, i, syncedAt))
	}

	if err := u.listingRepo.ReplaceAll(u.db.WithContext(ctx), listings); err != nil {
		u.log.Warnf("Failed to mirror doctor directory: %+v", err)
		return
	}
	u.log.WithField("listings", len(listings)).Info("Doctor directory mirrored")
}

func (u *directoryUsecase) Status() dto.DirectoryStatusResponse {
	u.mu.RLock()
	defer u.mu.RUnlock()

	switch {
	case !u.loaded:
		return dto.DirectoryStatusResponse{State: DirectoryStateLoading}
	case u.loadErr != nil:
		return dto.DirectoryStatusResponse{State: DirectoryStateError, Error: u.loadErr.Error()}
	default:
		return dto.DirectoryStatusResponse{State: DirectoryStateReady, Total: len(u.doctors)}
	}
}

// snapshot returns the loaded doctors, or the session error.
func (u *directoryUsecase) snapshot() ([]entity.Doctor, []string, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if !u.loaded {
		return nil, nil, ErrDirectoryNotLoaded
	}
	if u.loadErr != nil {
		return nil, nil, u.loadErr
	}
	return u.doctors, u.specialties, nil
}

func (u *directoryUsecase) Browse(ctx context.Context, criteria entity.FilterCriteria) (*dto.DirectoryResponse, error) {
	doctors, specialties, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	visible := directory.Apply(doctors, criteria)

	return &dto.DirectoryResponse{
		Doctors:     converter.DoctorsToResponses(visible),
		Total:       len(visible),
		Specialties: slices.Clone(specialties),
		Criteria:    converter.CriteriaToResponse(criteria),
		Query:       directory.EncodeQuery(criteria),
	}, nil
}

func (u *directoryUsecase) Suggest(ctx context.Context, query string, limit int) (*dto.SuggestionListResponse, error) {
	doctors, _, err := u.snapshot()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = u.suggestionLimit
	}

	suggestions := directory.Suggest(doctors, query, limit)

	return &dto.SuggestionListResponse{
		Suggestions: converter.DoctorsToResponses(suggestions),
		Visible:     len(suggestions) > 0,
	}, nil
}

func (u *directoryUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	_, specialties, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: slices.Clone(specialties),
		Total:       len(specialties),
	}, nil
}

func (u *directoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctor, err := u.findDoctor(doctorID)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *directoryUsecase) findDoctor(doctorID string) (*entity.Doctor, error) {
	doctors, _, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	u.mu.RLock()
	idx, ok := u.byID[doctorID]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrDoctorNotFound
	}

	doctor := doctors[idx]
	return &doctor, nil
}

// ApplyAction decodes the criteria from req.Query, applies one interaction and returns the new view,
// including the query string that now represents it.
func (u *directoryUsecase) ApplyAction(ctx context.Context, req *dto.CriteriaActionRequest) (*dto.DirectoryResponse, error) {
	criteria := directory.DecodeQuery(req.Query)

	switch req.Action {
	case ActionSetSearch:
		criteria.SetSearchText(req.Value)
	case ActionSelectSuggestion:
		doctor, err := u.findDoctor(req.Value)
		if err != nil {
			return nil, err
		}
		criteria.SetSearchText(doctor.Name)
	case ActionToggleSpecialty:
		if req.Value == "" {
			return nil, ErrInvalidActionValue
		}
		criteria.ToggleSpecialty(req.Value)
	case ActionToggleConsult:
		mode := entity.ParseConsultationMode(req.Value)
		if mode == entity.ConsultationModeNone {
			return nil, ErrInvalidActionValue
		}
		criteria.ToggleConsultationMode(mode)
	case ActionToggleSort:
		key := entity.ParseSortKey(req.Value)
		if key == entity.SortKeyNone {
			return nil, ErrInvalidActionValue
		}
		criteria.ToggleSortKey(key)
	case ActionReset:
		criteria.Reset()
	default:
		return nil, ErrUnknownAction
	}

	return u.Browse(ctx, criteria)
}
