package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/amana-storefront/backend"
	"github.com/Kariqs/amana-storefront/catalog"
	"github.com/gin-gonic/gin"
)

// GetProducts runs the collection page filter over the loaded product list.
func (h *Handler) GetProducts(ctx *gin.Context) {
	q := catalog.ParseQuery(ctx.Request.URL.Query())
	result := catalog.Apply(h.Shop.Products(), q)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"products":      result.Products,
		"total":         result.Total,
		"matched":       result.Matched,
		"activeFilters": result.ActiveFilters,
		"empty":         result.Empty,
		"query":         result.Query,
		"categories":    catalog.Categories,
		"subCategories": catalog.SubCategories,
		"currency":      h.Shop.Options().Currency,
	})
}

func (h *Handler) GetHomeProducts(ctx *gin.Context) {
	products := h.Shop.Products()
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"latest":      catalog.Latest(products, catalog.LatestLimit),
		"bestsellers": catalog.Bestsellers(products, catalog.BestsellerLimit),
		"currency":    h.Shop.Options().Currency,
	})
}

func (h *Handler) GetProduct(ctx *gin.Context) {
	product, err := h.Shop.Product(ctx.Request.Context(), ctx.Param("slug"))
	if errors.Is(err, backend.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondWithError(ctx, err, "Failed to load product")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"product":  product,
		"related":  catalog.Related(h.Shop.Products(), product.Category, product.ID, catalog.RelatedLimit),
		"currency": h.Shop.Options().Currency,
	})
}
