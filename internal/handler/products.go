package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/middleware"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductService interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, int, error)
	SaveProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "products")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Get("/api/products", h.ListProducts)
	r.Get("/api/products/{product_id}", h.GetProduct)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleAdmin))
		r.Get("/api/admin/products", h.AdminListProducts)
		r.Post("/api/admin/products", h.CreateProduct)
		r.Put("/api/admin/products/{product_id}", h.ReplaceProduct)
		r.Delete("/api/admin/products/{product_id}", h.DeleteProduct)
	})
}

func parseProductFilter(r *http.Request) (entities.ProductFilter, error) {
	q := r.URL.Query()
	limit, offset, err := parsePage(r)
	if err != nil {
		return entities.ProductFilter{}, err
	}
	f := entities.ProductFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		Status:   strings.TrimSpace(q.Get("status")),
		Limit:    limit,
		Offset:   offset,
	}
	if f.Status == entities.CountAll {
		f.Status = ""
	}
	return f, nil
}

// ListProducts возвращает витрину. Скрытые товары не показываются.
// @Summary      Каталог товаров
// @Tags         products
// @Produce      json
// @Param        search    query     string  false  "Название или бренд"
// @Param        category  query     string  false  "Категория"
// @Param        limit     query     int     false  "Размер страницы"
// @Param        offset    query     int     false  "Смещение"
// @Success      200  {object}  ProductListResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	f, err := parseProductFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.VisibleOnly = true
	if f.Status == string(entities.ProductHidden) {
		f.Status = ""
	}
	h.listProducts(w, r, f)
}

// AdminListProducts возвращает все товары, включая скрытые.
// @Summary      Список товаров (админ)
// @Tags         admin-products
// @Security     BearerAuth
// @Produce      json
// @Param        search    query     string  false  "Название или бренд"
// @Param        category  query     string  false  "Категория"
// @Param        status    query     string  false  "Статус товара"
// @Param        limit     query     int     false  "Размер страницы"
// @Param        offset    query     int     false  "Смещение"
// @Success      200  {object}  ProductListResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/products [get]
func (h *ProductHandler) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	f, err := parseProductFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.listProducts(w, r, f)
}

func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request, f entities.ProductFilter) {
	products, total, err := h.svc.ListProducts(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list products")
		return
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, ProductEntityToJSON(p))
	}

	limit, offset := entities.ListFilter{Limit: f.Limit, Offset: f.Offset}.Page()
	utils.WriteJSON(w, ProductListResponse{
		Products: out,
		Total:    total,
		Page:     PageDescription{Limit: limit, Offset: offset},
	}, http.StatusOK)
}

// GetProduct возвращает товар по ID.
// @Summary      Получить товар
// @Tags         products
// @Produce      json
// @Param        product_id  path      string  true  "Идентификатор товара"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/products/{product_id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	p, err := h.svc.GetProductByID(r.Context(), productID)
	if err == nil && p.Status == entities.ProductHidden {
		err = entities.ErrProductNotFound
	}
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get product", slog.String("product_id", productID))
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(p), http.StatusOK)
}

// CreateProduct создаёт товар.
// @Summary      Создать товар
// @Tags         admin-products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      Product  true  "Товар"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	h.saveProduct(w, r, "", http.StatusCreated)
}

// ReplaceProduct перезаписывает товар целиком.
// @Summary      Обновить товар
// @Tags         admin-products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        product_id  path      string   true  "Идентификатор товара"
// @Param        request     body      Product  true  "Товар"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/products/{product_id} [put]
func (h *ProductHandler) ReplaceProduct(w http.ResponseWriter, r *http.Request) {
	h.saveProduct(w, r, chi.URLParam(r, "product_id"), http.StatusOK)
}

func (h *ProductHandler) saveProduct(w http.ResponseWriter, r *http.Request, productID string, status int) {
	var req Product
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	p := ProductJSONToEntity(req)
	p.ID = productID

	saved, err := h.svc.SaveProduct(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to save product", slog.String("product_id", productID))
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(saved), status)
}

// DeleteProduct удаляет товар.
// @Summary      Удалить товар
// @Tags         admin-products
// @Security     BearerAuth
// @Param        product_id  path  string  true  "Идентификатор товара"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/products/{product_id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	if err := h.svc.DeleteProduct(r.Context(), productID); err != nil {
		writeServiceError(w, r, h.logger, err, "failed to delete product", slog.String("product_id", productID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
