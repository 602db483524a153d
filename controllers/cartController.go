package controllers

import (
	"net/http"

	"github.com/Kariqs/amana-storefront/middlewares"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(ctx *gin.Context) {
	view, err := h.Shop.CartView(ctx.Request.Context(), middlewares.SID(ctx))
	if err != nil {
		respondWithError(ctx, err, "Failed to fetch cart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, view)
}

func (h *Handler) AddToCart(ctx *gin.Context) {
	var in models.CartItemRequest
	if err := ctx.ShouldBindJSON(&in); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	state, err := h.Shop.AddToCart(ctx.Request.Context(), middlewares.SID(ctx), in.ItemID, in.Quantity)
	if err != nil {
		respondWithError(ctx, err, "Failed to add to cart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Added to cart", "cart": state})
}

func (h *Handler) UpdateCart(ctx *gin.Context) {
	var in models.CartItemRequest
	if err := ctx.ShouldBindJSON(&in); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	state, err := h.Shop.UpdateQuantity(ctx.Request.Context(), middlewares.SID(ctx), in.ItemID, in.Quantity)
	if err != nil {
		respondWithError(ctx, err, "Failed to update cart")
		return
	}
	message := "Cart updated"
	if in.Quantity <= 0 {
		message = "Item removed from cart"
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message, "cart": state})
}

func (h *Handler) ClearCart(ctx *gin.Context) {
	if err := h.Shop.ClearCart(ctx.Request.Context(), middlewares.SID(ctx)); err != nil {
		respondWithError(ctx, err, "Failed to clear cart")
		return
	}
	sendErrorResponse(ctx, http.StatusOK, "Cart cleared")
}
