package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/Kariqs/amana-storefront/admin"
	"github.com/Kariqs/amana-storefront/catalog"
	"github.com/Kariqs/amana-storefront/middlewares"
	"github.com/Kariqs/amana-storefront/models"
	"github.com/gin-gonic/gin"
)

func token(ctx *gin.Context) string {
	if v := middlewares.Visitor(ctx); v != nil {
		return v.Token
	}
	return ""
}

func confirmed(ctx *gin.Context) bool {
	return ctx.Query("confirm") == "true"
}

func (h *Handler) GetDashboard(ctx *gin.Context) {
	stats, err := h.Admin.Dashboard(ctx.Request.Context(), token(ctx))
	if err != nil {
		respondWithError(ctx, err, "Failed to load dashboard")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, stats)
}

func (h *Handler) AdminListProducts(ctx *gin.Context) {
	list, err := h.Admin.Products(ctx.Request.Context(), catalog.ParseAdminProductFilter(ctx.Request.URL.Query()))
	if err != nil {
		respondWithError(ctx, err, "Failed to fetch products")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, list)
}

// formImages opens the image1..image4 slots of a multipart product form.
// The returned closer must be called once the images are consumed.
func formImages(ctx *gin.Context) ([]admin.Image, func(), error) {
	var images []admin.Image
	var files []multipart.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	if ctx.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, closeAll, nil
	}
	for i := 1; i <= admin.MaxImages; i++ {
		header, err := ctx.FormFile(fmt.Sprintf("image%d", i))
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)
		images = append(images, admin.Image{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	return images, closeAll, nil
}

func (h *Handler) AdminAddProduct(ctx *gin.Context) {
	var in models.ProductInput
	if err := ctx.ShouldBind(&in); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	images, closeImages, err := formImages(ctx)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer closeImages()

	list, err := h.Admin.AddProduct(ctx.Request.Context(), token(ctx), in, images)
	if err != nil {
		respondWithError(ctx, err, "Failed to add product")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Product added", "products": list})
}

func (h *Handler) AdminUpdateProduct(ctx *gin.Context) {
	var in models.ProductInput
	if err := ctx.ShouldBind(&in); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	in.ID = ctx.Param("id")
	images, closeImages, err := formImages(ctx)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer closeImages()

	list, err := h.Admin.UpdateProduct(ctx.Request.Context(), token(ctx), in, images)
	if err != nil {
		respondWithError(ctx, err, "Failed to update product")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product updated", "products": list})
}

func (h *Handler) AdminRemoveProduct(ctx *gin.Context) {
	list, err := h.Admin.RemoveProduct(ctx.Request.Context(), token(ctx), ctx.Param("id"), confirmed(ctx))
	if err != nil {
		respondWithError(ctx, err, "Failed to remove product")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product removed", "products": list})
}

func (h *Handler) AdminListOrders(ctx *gin.Context) {
	list, err := h.Admin.Orders(ctx.Request.Context(), token(ctx), admin.ParseOrderFilter(ctx.Request.URL.Query()))
	if err != nil {
		respondWithError(ctx, err, "Failed to fetch orders")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, list)
}

func (h *Handler) AdminUpdateOrderStatus(ctx *gin.Context) {
	var in models.OrderStatusUpdate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	filter := admin.ParseOrderFilter(ctx.Request.URL.Query())
	list, err := h.Admin.UpdateOrderStatus(ctx.Request.Context(), token(ctx), ctx.Param("orderId"), in.Status, filter)
	if err != nil {
		respondWithError(ctx, err, "Failed to update order status")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated", "orders": list})
}

func (h *Handler) AdminUpdateTracking(ctx *gin.Context) {
	var in models.TrackingUpdate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	filter := admin.ParseOrderFilter(ctx.Request.URL.Query())
	list, err := h.Admin.UpdateTracking(ctx.Request.Context(), token(ctx), ctx.Param("orderId"), in, filter)
	if err != nil {
		respondWithError(ctx, err, "Failed to update tracking")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Tracking updated", "orders": list})
}

func (h *Handler) AdminListUsers(ctx *gin.Context) {
	list, err := h.Admin.Users(ctx.Request.Context(), token(ctx), admin.ParseUserFilter(ctx.Request.URL.Query()))
	if err != nil {
		respondWithError(ctx, err, "Failed to fetch users")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, list)
}

func (h *Handler) AdminUpdateUser(ctx *gin.Context) {
	var in models.UserUpdate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	filter := admin.ParseUserFilter(ctx.Request.URL.Query())
	list, err := h.Admin.UpdateUser(ctx.Request.Context(), token(ctx), ctx.Param("userId"), in, filter)
	if err != nil {
		respondWithError(ctx, err, "Failed to update user")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User updated", "users": list})
}

func (h *Handler) AdminDeleteUser(ctx *gin.Context) {
	filter := admin.ParseUserFilter(ctx.Request.URL.Query())
	list, err := h.Admin.DeleteUser(ctx.Request.Context(), token(ctx), ctx.Param("userId"), confirmed(ctx), filter)
	if err != nil {
		respondWithError(ctx, err, "Failed to delete user")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User deleted", "users": list})
}

func (h *Handler) AdminListVendors(ctx *gin.Context) {
	list, err := h.Admin.Vendors(ctx.Request.Context(), token(ctx), admin.ParseVendorFilter(ctx.Request.URL.Query()))
	if err != nil {
		respondWithError(ctx, err, "Failed to fetch vendors")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, list)
}

func (h *Handler) AdminUpdateVendor(ctx *gin.Context) {
	var in models.VendorUpdate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	filter := admin.ParseVendorFilter(ctx.Request.URL.Query())
	list, err := h.Admin.UpdateVendor(ctx.Request.Context(), token(ctx), ctx.Param("vendorId"), in, filter)
	if err != nil {
		respondWithError(ctx, err, "Failed to update vendor")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Vendor updated", "vendors": list})
}

func (h *Handler) AdminDeleteVendor(ctx *gin.Context) {
	filter := admin.ParseVendorFilter(ctx.Request.URL.Query())
	list, err := h.Admin.DeleteVendor(ctx.Request.Context(), token(ctx), ctx.Param("vendorId"), confirmed(ctx), filter)
	if err != nil {
		respondWithError(ctx, err, "Failed to delete vendor")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Vendor deleted", "vendors": list})
}
