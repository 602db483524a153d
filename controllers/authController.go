package controllers

import (
	"net/http"

	"github.com/Kariqs/amana-storefront/middlewares"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidCredentials = "invalid email or password"
	msgLoggedOut          = "Logged out successfully"
)

// Login authenticates through the backend and loads the server cart.
func (h *Handler) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	state, err := h.Shop.Login(ctx.Request.Context(), middlewares.SID(ctx), loginData)
	if err != nil {
		respondWithError(ctx, err, msgInvalidCredentials)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"user":    state.User,
		"cart":    state,
	})
}

func (h *Handler) Logout(ctx *gin.Context) {
	if err := h.Shop.Logout(ctx.Request.Context(), middlewares.SID(ctx)); err != nil {
		respondWithError(ctx, err, "Failed to log out")
		return
	}
	sendErrorResponse(ctx, http.StatusOK, msgLoggedOut)
}

// Me reports who the visitor is and the cart badge numbers.
func (h *Handler) Me(ctx *gin.Context) {
	state, err := h.Shop.State(ctx.Request.Context(), middlewares.SID(ctx))
	if err != nil {
		respondWithError(ctx, err, "Failed to load session")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, state)
}
