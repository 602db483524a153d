package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/amana-storefront/admin"
	"github.com/Kariqs/amana-storefront/backend"
	"github.com/Kariqs/amana-storefront/checkout"
	"github.com/Kariqs/amana-storefront/shop"
	"github.com/Kariqs/amana-storefront/tracking"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "Internal server error"
	msgBackendUnavailable  = "Unable to reach the shop server. Please try again."
	msgCheckForm           = "Please correct the highlighted fields"
)

// Handler carries the services the HTTP handlers work against.
type Handler struct {
	Shop     *shop.Service
	Checkout *checkout.Service
	Tracking *tracking.Service
	Admin    *admin.Service
}

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondWithError maps a service error to a status and a message.
func respondWithError(ctx *gin.Context, err error, fallback string) {
	var fieldErrs checkout.FieldErrors
	if errors.As(err, &fieldErrs) {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{"message": msgCheckForm, "errors": fieldErrs})
		return
	}

	switch {
	case errors.Is(err, shop.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, tracking.ErrMissingQuery),
		errors.Is(err, admin.ErrNotConfirmed):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, admin.ErrInvalidInput):
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{"message": msgInvalidInput, "error": err.Error()})
		return
	case errors.Is(err, shop.ErrUnknownProduct), errors.Is(err, tracking.ErrOrderNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, shop.ErrOutOfStock),
		errors.Is(err, shop.ErrInsufficientStock),
		errors.Is(err, checkout.ErrUnavailableItems):
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	case errors.Is(err, admin.ErrUploadsUnavailable):
		sendErrorResponse(ctx, http.StatusServiceUnavailable, err.Error())
		return
	case errors.Is(err, backend.ErrUnavailable):
		sendErrorResponse(ctx, http.StatusBadGateway, msgBackendUnavailable)
		return
	case errors.Is(err, backend.ErrMalformedPayload):
		logrus.Errorf("respondWithError: malformed backend payload err = %v", err)
		sendErrorResponse(ctx, http.StatusBadGateway, fallback)
		return
	}

	var be *backend.Error
	if errors.As(err, &be) {
		status := http.StatusBadRequest
		switch {
		case be.Declined:
		case be.Status >= 500:
			status = http.StatusBadGateway
		case be.Status >= 400:
			status = be.Status
		}
		sendErrorResponse(ctx, status, backend.UserMessage(err, fallback))
		return
	}

	logrus.Errorf("respondWithError: %s err = %v", fallback, err)
	sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
}
