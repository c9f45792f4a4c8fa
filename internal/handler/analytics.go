package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/middleware"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context, from, to time.Time) entities.Dashboard
}

type AnalyticsHandler struct {
	logger *slog.Logger
	svc    AnalyticsService
}

func NewAnalyticsHandler(logger *slog.Logger, svc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		logger: logger.With(slog.String("handler", "analytics")),
		svc:    svc,
	}
}

func (h *AnalyticsHandler) Init(r chi.Router) {
	r.Get("/api/statuses", h.Statuses)
	r.With(middleware.RequireRole(entities.RoleAdmin)).Get("/api/admin/analytics/dashboard", h.Dashboard)
}

// Dashboard возвращает сводку продаж.
// @Summary      Дашборд
// @Description  Сегменты, которые не удалось загрузить, перечислены в failed_segments и содержат значения по умолчанию
// @Tags         admin-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        from  query     string  false  "Начало периода"
// @Param        to    query     string  false  "Конец периода"
// @Success      200  {object}  Dashboard
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Router       /api/admin/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	d := h.svc.Dashboard(r.Context(), f.From, f.To)
	if len(d.FailedSegments) > 0 {
		h.logger.WarnContext(r.Context(), "dashboard is partial", slog.Any("failed_segments", d.FailedSegments))
	}

	utils.WriteJSON(w, DashboardEntityToJSON(d, f.From, f.To), http.StatusOK)
}

// Statuses возвращает словарь статусов с подписями, цветами и переходами.
// @Summary      Словарь статусов
// @Tags         statuses
// @Produce      json
// @Success      200  {object}  StatusVocabulary
// @Router       /api/statuses [get]
func (h *AnalyticsHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, StatusVocabulary{
		Order:  statusValues(entities.OrderStatuses, entities.KindOrder, entities.OrderStatus.NextStates),
		Return: statusValues(entities.ReturnStatuses, entities.KindReturn, entities.ReturnStatus.NextStates),
		Chat:   statusValues(entities.ChatStatuses, entities.KindChat, entities.ChatStatus.NextStates),
	}, http.StatusOK)
}
