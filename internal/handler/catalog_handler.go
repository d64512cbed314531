package handler

import (
	"fmt"
	"net/http"
	"path"
	"strconv"
	"time"

	"sofa-shop/internal/model"
	"sofa-shop/internal/service"
	"sofa-shop/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxImageSize bounds multipart image uploads.
const maxImageSize = 10 << 20 // 10 MiB

// CatalogHandler handles category, product and variant HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	images  storage.ImageStore
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, images storage.ImageStore, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		images:  images,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListCategories handles GET /api/categories requests.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/admin/categories requests.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id} requests.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID format", h.logger)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchProducts handles GET /api/products requests with search, filter,
// sort and pagination query parameters.
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := model.ProductQuery{
		Search:       q.Get("search"),
		CategorySlug: q.Get("category"),
		Color:        q.Get("color"),
		Sort:         q.Get("sort"),
	}
	query.MinPrice, _ = strconv.ParseFloat(q.Get("minPrice"), 64)
	query.MaxPrice, _ = strconv.ParseFloat(q.Get("maxPrice"), 64)
	query.Limit, _ = strconv.Atoi(q.Get("limit"))
	query.Offset, _ = strconv.Atoi(q.Get("offset"))

	products, err := h.service.SearchProducts(r.Context(), query)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{slug} requests.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	detail, err := h.service.GetProductBySlug(r.Context(), slug)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// CreateProduct handles POST /api/admin/products requests.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/admin/products/{id} requests.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return
	}

	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.service.UpdateProduct(r.Context(), productID, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetProductActive handles PATCH /api/admin/products/{id}/active requests.
func (h *CatalogHandler) SetProductActive(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.service.SetProductActive(r.Context(), productID, req.Active); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}

// DeleteProduct handles DELETE /api/admin/products/{id} requests.
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateVariant handles PUT /api/admin/variants/{id} requests.
func (h *CatalogHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	variantID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid variant ID format", h.logger)
		return
	}

	var update model.VariantUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.service.UpdateVariant(r.Context(), variantID, update); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, update)
}

// UploadImage handles POST /api/admin/images multipart requests and
// returns the public URL of the stored object.
func (h *CatalogHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body", h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required", h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	key := fmt.Sprintf("images/%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], path.Ext(header.Filename))

	url, err := h.images.Upload(r.Context(), key, contentType, file)
	if err != nil {
		h.logger.Error().Err(err).Str("key", key).Msg("failed to upload image")
		writeError(w, http.StatusInternalServerError, "failed to upload image", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
