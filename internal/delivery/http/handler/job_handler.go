package handler

import (
	"time"

	"balikerja/internal/delivery/http/middleware"
	"balikerja/internal/domain/geo"
	"balikerja/internal/pkg/jwt"
	"balikerja/internal/pkg/response"
	"balikerja/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Category    string    `json:"category"`
	Wage        float64   `json:"wage"`
	ShiftDate   time.Time `json:"shift_date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Urgent      bool      `json:"urgent"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	WorkerCount int       `json:"worker_count"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs", h.Create, middleware.RequireRole(jwt.RoleBusiness))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	businessID, ok := callerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var loc *geo.Coordinate
	if req.Latitude != nil && req.Longitude != nil {
		loc = &geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	j, err := h.uc.CreateJob(c.Context(), usecase.CreateJobInput{
		BusinessID:  businessID,
		Category:    req.Category,
		Wage:        req.Wage,
		ShiftDate:   req.ShiftDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Urgent:      req.Urgent,
		Location:    loc,
		WorkerCount: req.WorkerCount,
	})
	if err != nil {
		return mapEngineError(err)
	}

	return response.Success(c, fiber.StatusCreated, "job created", jobToResponse(j))
}
