package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/repository"
	"github.com/superengulfing/site-backend/internal/response"
	"github.com/superengulfing/site-backend/internal/service"
	"github.com/superengulfing/site-backend/internal/validator"
)

// SubscriptionHandler handles the landing-page email capture.
type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Subscribe godoc
// POST /api/v1/subscribe
// Records the email and queues the confirmation message that points at
// the locale's thank-you page.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.subscriptionService.Subscribe(c.Request.Context(), &req); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscriber) {
			response.Fail(c, http.StatusConflict, response.ErrAlreadySubscribed)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"email": req.Email})
}
