package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/middleware"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (entities.Product, error)
	ListProducts(ctx context.Context, filter entities.ProductFilter) (entities.Page[entities.Product], error)
	UpdateProduct(ctx context.Context, id int64, patch entities.ProductPatch) (entities.Product, error)
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CatalogService
}

func NewCatalogHandler(logger *slog.Logger, svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Get("/products/slug/{slug}", h.GetProductBySlug)

	r.With(middleware.RequireRole(entities.RoleAdmin)).Patch("/admin/products/{id}", h.UpdateProduct)
}

// ListProducts
// @Summary      List products
// @Tags         products
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size (max 100)"
// @Param        search    query  string  false  "Name substring"
// @Param        category  query  string  false  "Category slug"
// @Success      200  {object}  Page[Product]
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.svc.ListProducts(r.Context(), entities.ProductFilter{
		CategorySlug: q.Get("category"),
		Search:       q.Get("search"),
		OnlyActive:   true,
		Page:         utils.QueryInt(r, "page", 1),
		Limit:        utils.QueryInt(r, "limit", 0),
	})
	if err != nil {
		writeServiceError(w, r, h.logger, "list products", err)
		return
	}
	utils.WriteJSON(w, PageToJSON(page, ProductEntityToJSON), http.StatusOK)
}

// GetProduct
// @Summary      Get product by id
// @Tags         products
// @Param        id   path  int  true  "Product id"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, "get product", err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// GetProductBySlug
// @Summary      Get product by slug
// @Tags         products
// @Param        slug  path  string  true  "Product slug"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/slug/{slug} [get]
func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := h.validate.Var(slug, "required,max=255"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	product, err := h.svc.GetProductBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, r, h.logger, "get product by slug", err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// UpdateProduct
// @Summary      Update product (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id    path  int            true  "Product id"
// @Param        body  body  UpdateProduct  true  "Fields to change"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/products/{id} [patch]
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body UpdateProduct
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	product, err := h.svc.UpdateProduct(r.Context(), id, UpdateProductJSONToEntity(body))
	if err != nil {
		writeServiceError(w, r, h.logger, "update product", err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}
