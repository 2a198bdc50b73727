package handler

import (
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
)

type HealthHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewHealthHandler(directoryUsecase usecase.DirectoryUsecase) *HealthHandler {
	return &HealthHandler{directoryUsecase: directoryUsecase}
}

type healthResponse struct {
	Status    string                      `json:"status"`
	Directory dto.DirectoryStatusResponse `json:"directory"`
}

// Check always answers 200 while the process is up; the directory state tells whether it can serve data.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Directory: h.directoryUsecase.Status(),
	})
}
