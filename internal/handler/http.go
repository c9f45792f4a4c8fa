package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/auth"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/export"
	"github.com/SergeyBogomolovv/furniture-resale/internal/middleware"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OrderService interface {
	PlaceCustomerOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.ListFilter) (entities.OrderList, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error)
	ExportOrders(ctx context.Context, f entities.ListFilter) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, upd entities.OrderStatusUpdate) (entities.Order, error)
	OrderHistory(ctx context.Context, orderID string) ([]entities.StatusEvent, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/api/orders", h.PlaceOrder)
		r.Get("/api/orders", h.ListMyOrders)
		r.Get("/api/orders/{order_id}", h.GetOrder)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleAdmin))
		r.Get("/api/admin/orders", h.ListOrders)
		r.Get("/api/admin/orders/export", h.ExportOrders)
		r.Get("/api/admin/orders/{order_id}", h.AdminGetOrder)
		r.Patch("/api/admin/orders/{order_id}/status", h.UpdateOrderStatus)
		r.Get("/api/admin/orders/{order_id}/history", h.OrderHistory)
	})
}

func principalOf(r *http.Request) auth.Principal {
	p, _ := auth.FromContext(r.Context())
	return p
}

// PlaceOrder оформляет заказ текущего покупателя по ценам каталога.
// @Summary      Оформить заказ
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PlaceOrderRequest  true  "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      422  {object}  utils.ErrorResponse "Товар недоступен для заказа"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	order, err := h.svc.PlaceCustomerOrder(r.Context(), entities.Order{
		CustomerID:      principalOf(r).UserID,
		Items:           cartItemsToEntity(req.Items),
		ShippingAddress: shippingAddressToEntity(req.ShippingAddress),
		Notes:           req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to place order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListMyOrders возвращает заказы текущего покупателя.
// @Summary      Мои заказы
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [get]
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListCustomerOrders(r.Context(), principalOf(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list customer orders")
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Покупатель видит только свои заказы, чужой заказ считается не найденным
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	h.getOrder(w, r, func(o entities.Order) bool {
		p := principalOf(r)
		return p.IsAdmin() || o.CustomerID == p.UserID
	})
}

// AdminGetOrder возвращает любой заказ по ID.
// @Summary      Получить заказ (админ)
// @Tags         admin-orders
// @Security     BearerAuth
// @Produce      json
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders/{order_id} [get]
func (h *OrderHandler) AdminGetOrder(w http.ResponseWriter, r *http.Request) {
	h.getOrder(w, r, func(entities.Order) bool { return true })
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request, visible func(entities.Order) bool) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	timer := prometheus.NewTimer(orderRequestDuration)
	defer timer.ObserveDuration()

	order, err := h.svc.GetOrderByID(ctx, orderID)
	if err == nil && !visible(order) {
		err = entities.ErrOrderNotFound
	}

	if errors.Is(err, entities.ErrOrderNotFound) {
		orderRequestTotal.WithLabelValues("not_found").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает страницу заказов и счётчики по статусам.
// @Summary      Список заказов
// @Description  Счётчики считаются по поиску и датам без учёта вкладки статуса
// @Tags         admin-orders
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Номер заказа, покупатель, получатель или телефон"
// @Param        from    query     string  false  "Начало периода (YYYY-MM-DD или RFC 3339)"
// @Param        to      query     string  false  "Конец периода (YYYY-MM-DD или RFC 3339)"
// @Param        status  query     string  false  "Вкладка статуса, all для всех"
// @Param        limit   query     int     false  "Размер страницы"
// @Param        offset  query     int     false  "Смещение"
// @Success      200  {object}  OrderListResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.svc.ListOrders(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrderListResponse{
		Orders: ordersToJSON(list.Orders),
		Total:  list.Total,
		Counts: list.Counts,
		Page:   pageOf(f),
	}, http.StatusOK)
}

// ExportOrders выгружает отфильтрованные заказы в XLSX.
// @Summary      Экспорт заказов
// @Tags         admin-orders
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query     string  false  "Поиск"
// @Param        from    query     string  false  "Начало периода"
// @Param        to      query     string  false  "Конец периода"
// @Param        status  query     string  false  "Вкладка статуса"
// @Success      200  {file}    file
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders/export [get]
func (h *OrderHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := h.svc.ExportOrders(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to export orders")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteOrders(&buf, orders); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write orders workbook", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	ordersExported.Add(float64(len(orders)))

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// UpdateOrderStatus переводит заказ в новый статус.
// @Summary      Сменить статус заказа
// @Description  Для статуса shipped обязательны перевозчик и трек-номер
// @Tags         admin-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                    true  "Идентификатор заказа"
// @Param        request   body      UpdateOrderStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Статус изменён параллельно"
// @Failure      422  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	var req UpdateOrderStatusRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	upd := entities.OrderStatusUpdate{
		OrderID: orderID,
		ActorID: principalOf(r).UserID,
		Status:  entities.OrderStatus(req.Status),
		Note:    req.Note,
	}
	if req.Carrier != "" || req.TrackingNumber != "" || req.ShippingNotes != "" {
		upd.Shipping = &entities.ShippingInfo{
			Carrier:        req.Carrier,
			TrackingNumber: req.TrackingNumber,
			Notes:          req.ShippingNotes,
		}
	}

	order, err := h.svc.UpdateOrderStatus(r.Context(), upd)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to update order status", slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// OrderHistory возвращает историю статусов заказа.
// @Summary      История статусов заказа
// @Tags         admin-orders
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {array}   StatusEvent
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders/{order_id}/history [get]
func (h *OrderHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	events, err := h.svc.OrderHistory(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get order history", slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, statusEventsToJSON(events), http.StatusOK)
}
