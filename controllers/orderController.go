package controllers

import (
	"net/http"

	"github.com/Kariqs/amana-storefront/checkout"
	"github.com/Kariqs/amana-storefront/middlewares"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCheckout(ctx *gin.Context) {
	summary, err := h.Checkout.Summary(ctx.Request.Context(), middlewares.SID(ctx))
	if err != nil {
		respondWithError(ctx, err, "Failed to load checkout")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, summary)
}

// PlaceOrder places a cash-on-delivery order for the visitor's cart.
func (h *Handler) PlaceOrder(ctx *gin.Context) {
	var form checkout.Form
	if err := ctx.ShouldBindJSON(&form); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	conf, err := h.Checkout.Place(ctx.Request.Context(), middlewares.SID(ctx), form)
	if err != nil {
		respondWithError(ctx, err, "Failed to place order")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":      "Order placed successfully!",
		"confirmation": conf,
	})
}

func (h *Handler) TrackOrder(ctx *gin.Context) {
	result, err := h.Tracking.Lookup(ctx.Request.Context(), ctx.Query("orderId"), ctx.Query("email"))
	if err != nil {
		respondWithError(ctx, err, "Failed to track order. Please try again.")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, result)
}
