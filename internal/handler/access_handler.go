package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/repository"
	"github.com/superengulfing/site-backend/internal/response"
	"github.com/superengulfing/site-backend/internal/service"
	"github.com/superengulfing/site-backend/internal/validator"
)

// AccessHandler handles course access requests: the public form plus
// the admin moderation endpoints.
type AccessHandler struct {
	accessService *service.AccessService
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(accessService *service.AccessService) *AccessHandler {
	return &AccessHandler{accessService: accessService}
}

// Create godoc
// POST /api/v1/access-requests
func (h *AccessHandler) Create(c *gin.Context) {
	var req model.CreateAccessRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	a, err := h.accessService.CreateRequest(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAccessRequest) {
			response.Fail(c, http.StatusConflict, response.ErrAlreadyRequested)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"request": a})
}

// List godoc
// GET /api/v1/admin/access-requests
// Lists access requests with pagination, optionally filtered by status.
func (h *AccessHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var status *model.AccessRequestStatus
	if raw := c.Query("status"); raw != "" {
		s := model.AccessRequestStatus(raw)
		if s != model.AccessPending && s != model.AccessApproved && s != model.AccessRejected {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		status = &s
	}

	requests, total, err := h.accessService.List(c.Request.Context(), status, perPage, (page-1)*perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"requests": requests}, pagination)
}

// Approve godoc
// POST /api/v1/admin/access-requests/:id/approve
// Creates the member account and emails the set-password link.
func (h *AccessHandler) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.accessService.Approve(c.Request.Context(), id); err != nil {
		h.resolveError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": model.AccessApproved})
}

// Reject godoc
// POST /api/v1/admin/access-requests/:id/reject
func (h *AccessHandler) Reject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.accessService.Reject(c.Request.Context(), id); err != nil {
		h.resolveError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": model.AccessRejected})
}

func (h *AccessHandler) resolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAlreadyResolved):
		response.Fail(c, http.StatusConflict, response.ErrRequestResolved)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
