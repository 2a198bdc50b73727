package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/directory"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// ListDoctors serves the filtered and sorted directory for the criteria in the query string.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	criteria := directory.ParseQuery(r.URL.Query())

	doctors, err := h.directoryUsecase.Browse(r.Context(), criteria)
	if err != nil {
		h.handleError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		h.handleError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.SuggestionRequest{Query: query.Get(directory.QueryParamSearch)}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		req.Limit = limit
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestions, err := h.directoryUsecase.Suggest(r.Context(), req.Query, req.Limit)
	if err != nil {
		h.handleError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.GetSpecialties(r.Context())
	if err != nil {
		h.handleError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

// ApplyCriteriaAction applies one filter interaction and answers with the new view and query string.
func (h *DoctorHandler) ApplyCriteriaAction(w http.ResponseWriter, r *http.Request) {
	var req dto.CriteriaActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.directoryUsecase.ApplyAction(r.Context(), &req)
	if err != nil {
		h.handleError(w, err, "Failed to apply criteria")
		return
	}

	response.Success(w, http.StatusOK, "Criteria applied successfully", doctors)
}

func (h *DoctorHandler) handleError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDirectoryNotLoaded):
		response.ServiceUnavailable(w, "Doctor directory is still loading")
	case errors.Is(err, usecase.ErrDirectoryUnavailable):
		response.ServiceUnavailable(w, "Doctor directory unavailable")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrUnknownAction):
		response.Error(w, http.StatusBadRequest, "Unknown criteria action", nil)
	case errors.Is(err, usecase.ErrInvalidActionValue):
		response.Error(w, http.StatusBadRequest, "Invalid value for criteria action", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
