package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/middleware"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ReturnService interface {
	CreateReturn(ctx context.Context, req entities.ReturnRequest) (entities.ReturnRequest, error)
	GetReturnByID(ctx context.Context, returnID string) (entities.ReturnRequest, error)
	UpdateReturnStatus(ctx context.Context, upd entities.ReturnStatusUpdate) (entities.ReturnRequest, error)
	ListReturns(ctx context.Context, f entities.ListFilter) (entities.ReturnList, error)
	ListCustomerReturns(ctx context.Context, customerID string) ([]entities.ReturnRequest, error)
}

type ReturnHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ReturnService
}

func NewReturnHandler(logger *slog.Logger, svc ReturnService) *ReturnHandler {
	return &ReturnHandler{
		logger:   logger.With(slog.String("handler", "returns")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *ReturnHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/api/returns", h.CreateReturn)
		r.Get("/api/returns", h.ListMyReturns)
		r.Get("/api/returns/{return_id}", h.GetReturn)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleAdmin))
		r.Get("/api/admin/returns", h.ListReturns)
		r.Patch("/api/admin/returns/{return_id}/status", h.UpdateReturnStatus)
	})
}

// CreateReturn открывает заявку на возврат по доставленному заказу.
// @Summary      Запросить возврат
// @Tags         returns
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateReturnRequest  true  "Заявка"
// @Success      201  {object}  ReturnRequest
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заявка уже открыта"
// @Failure      422  {object}  utils.ErrorResponse "Заказ нельзя вернуть"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/returns [post]
func (h *ReturnHandler) CreateReturn(w http.ResponseWriter, r *http.Request) {
	var req CreateReturnRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	items := make([]entities.ReturnItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.ReturnItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	ret, err := h.svc.CreateReturn(r.Context(), entities.ReturnRequest{
		OrderID:      req.OrderID,
		CustomerID:   principalOf(r).UserID,
		Items:        items,
		Reason:       entities.ReturnReason(req.Reason),
		Description:  req.Description,
		ReturnMethod: entities.ReturnMethod(req.ReturnMethod),
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to create return", slog.String("order_id", req.OrderID))
		return
	}

	utils.WriteJSON(w, ReturnEntityToJSON(ret), http.StatusCreated)
}

// ListMyReturns возвращает заявки текущего покупателя.
// @Summary      Мои возвраты
// @Tags         returns
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   ReturnRequest
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/returns [get]
func (h *ReturnHandler) ListMyReturns(w http.ResponseWriter, r *http.Request) {
	returns, err := h.svc.ListCustomerReturns(r.Context(), principalOf(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list customer returns")
		return
	}
	utils.WriteJSON(w, returnsToJSON(returns), http.StatusOK)
}

// GetReturn возвращает заявку. Покупатель видит только свои заявки.
// @Summary      Получить заявку на возврат
// @Tags         returns
// @Security     BearerAuth
// @Produce      json
// @Param        return_id  path      string  true  "Идентификатор заявки"
// @Success      200  {object}  ReturnRequest
// @Failure      404  {object}  utils.ErrorResponse "Заявка не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/returns/{return_id} [get]
func (h *ReturnHandler) GetReturn(w http.ResponseWriter, r *http.Request) {
	returnID := chi.URLParam(r, "return_id")

	ret, err := h.svc.GetReturnByID(r.Context(), returnID)
	if err == nil {
		if p := principalOf(r); !p.IsAdmin() && ret.CustomerID != p.UserID {
			err = entities.ErrReturnNotFound
		}
	}
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get return", slog.String("return_id", returnID))
		return
	}

	utils.WriteJSON(w, ReturnEntityToJSON(ret), http.StatusOK)
}

// ListReturns возвращает страницу заявок и счётчики по статусам.
// @Summary      Список возвратов
// @Tags         admin-returns
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Поиск"
// @Param        from    query     string  false  "Начало периода"
// @Param        to      query     string  false  "Конец периода"
// @Param        status  query     string  false  "Вкладка статуса, all для всех"
// @Param        limit   query     int     false  "Размер страницы"
// @Param        offset  query     int     false  "Смещение"
// @Success      200  {object}  ReturnListResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/returns [get]
func (h *ReturnHandler) ListReturns(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.svc.ListReturns(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list returns")
		return
	}

	utils.WriteJSON(w, ReturnListResponse{
		Returns: returnsToJSON(list.Returns),
		Total:   list.Total,
		Counts:  list.Counts,
		Page:    pageOf(f),
	}, http.StatusOK)
}

// UpdateReturnStatus переводит заявку в новый статус.
// @Summary      Сменить статус возврата
// @Description  Отказ требует причину, refunded переводит заказ в returned
// @Tags         admin-returns
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        return_id  path      string                     true  "Идентификатор заявки"
// @Param        request    body      UpdateReturnStatusRequest  true  "Новый статус"
// @Success      200  {object}  ReturnRequest
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заявка не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Статус изменён параллельно"
// @Failure      422  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/returns/{return_id}/status [patch]
func (h *ReturnHandler) UpdateReturnStatus(w http.ResponseWriter, r *http.Request) {
	returnID := chi.URLParam(r, "return_id")

	var req UpdateReturnStatusRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	ret, err := h.svc.UpdateReturnStatus(r.Context(), entities.ReturnStatusUpdate{
		ReturnID:        returnID,
		ActorID:         principalOf(r).UserID,
		Status:          entities.ReturnStatus(req.Status),
		RejectionReason: req.RejectionReason,
		RefundAmount:    req.RefundAmount,
		Notes:           req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to update return status", slog.String("return_id", returnID))
		return
	}

	utils.WriteJSON(w, ReturnEntityToJSON(ret), http.StatusOK)
}
