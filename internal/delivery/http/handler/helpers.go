package handler

import (
	"errors"
	"strconv"
	"strings"

	"balikerja/internal/delivery/http/dto"
	"balikerja/internal/delivery/http/middleware"
	"balikerja/internal/domain/geo"
	"balikerja/internal/domain/job"
	"balikerja/internal/pkg/response"
	"balikerja/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func callerID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	return id, ok
}

// coordinateFromQuery reads optional lat/lng query params. Both must be
// present and parse; anything else means "location unknown".
func coordinateFromQuery(c fiber.Ctx) *geo.Coordinate {
	latRaw := strings.TrimSpace(c.Query("lat"))
	lngRaw := strings.TrimSpace(c.Query("lng"))
	if latRaw == "" || lngRaw == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil
	}
	return &geo.Coordinate{Latitude: lat, Longitude: lng}
}

func mapEngineError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrJobUnavailable):
		return middleware.NewAppError(fiber.StatusConflict, "Job unavailable", nil, err)
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrComplianceViolation):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Work-day limit reached for this business", nil, err)
	case errors.Is(err, usecase.ErrInvalidState):
		return middleware.NewAppError(fiber.StatusConflict, "Application is not in a completable state", nil, err)
	case errors.Is(err, usecase.ErrNotStarted):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Shift was never started", nil, err)
	case errors.Is(err, usecase.ErrInvalidDuration):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Completion time must be after the shift start", nil, err)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func jobToResponse(j job.Job) dto.JobResponse {
	out := dto.JobResponse{
		ID:          j.ID,
		BusinessID:  j.BusinessID,
		Category:    j.Category,
		Wage:        j.Wage,
		Status:      string(j.Status),
		ShiftDate:   j.ShiftDate,
		StartTime:   j.StartTime,
		EndTime:     j.EndTime,
		Urgent:      j.Urgent,
		WorkerCount: j.WorkerCount,
		CreatedAt:   j.CreatedAt,
	}
	if j.Location != nil {
		out.Latitude = &j.Location.Latitude
		out.Longitude = &j.Location.Longitude
	}
	return out
}
