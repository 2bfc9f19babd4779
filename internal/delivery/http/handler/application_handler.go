package handler

import (
	"time"

	"balikerja/internal/delivery/http/dto"
	"balikerja/internal/delivery/http/middleware"
	"balikerja/internal/domain/application"
	"balikerja/internal/pkg/jwt"
	"balikerja/internal/pkg/response"
	"balikerja/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	JobID string `json:"job_id"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type completeRequest struct {
	// CompletedAt is optional; absent means "now".
	CompletedAt *time.Time `json:"completed_at"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/applications", h.Apply, middleware.RequireRole(jwt.RoleWorker))
	r.Patch("/applications/:application_id/status", h.UpdateStatus, middleware.RequireRole(jwt.RoleBusiness))
	r.Post("/applications/:application_id/complete", h.Complete, middleware.RequireRole(jwt.RoleBusiness))
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	workerID, ok := callerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	app, err := h.uc.Apply(c.Context(), workerID, jobID)
	if err != nil {
		return mapEngineError(err)
	}

	return response.Success(c, fiber.StatusCreated, "application submitted", applicationToResponse(app))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("application_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.Status == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Status is required", nil, nil)
	}

	app, err := h.uc.UpdateStatus(c.Context(), applicationID, application.Status(req.Status))
	if err != nil {
		return mapEngineError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, applicationToResponse(app))
}

func (h *ApplicationHandler) Complete(c fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("application_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	var req completeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	completedAt := time.Now().UTC()
	if req.CompletedAt != nil {
		completedAt = req.CompletedAt.UTC()
	}

	split, err := h.uc.Complete(c.Context(), applicationID, completedAt)
	if err != nil {
		return mapEngineError(err)
	}

	return response.Success(c, fiber.StatusOK, "shift completed", dto.PaymentSplitResponse{
		ApplicationID:      split.ApplicationID,
		CompletedAt:        split.CompletedAt,
		HoursWorked:        split.HoursWorked,
		GrossAmount:        split.GrossAmount,
		PlatformCommission: split.PlatformCommission,
		NetWorkerAmount:    split.NetWorkerAmount,
	})
}

func applicationToResponse(a application.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		WorkerID:    a.WorkerID,
		BusinessID:  a.BusinessID,
		Status:      string(a.Status),
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
		CreatedAt:   a.CreatedAt,
	}
}
