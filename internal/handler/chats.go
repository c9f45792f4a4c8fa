package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/furniture-resale/internal/auth"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/middleware"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ChatService interface {
	OpenSession(ctx context.Context, customerID, productID string) (entities.ChatSession, error)
	GetSession(ctx context.Context, sessionID string) (entities.ChatSession, error)
	AssignDealer(ctx context.Context, sessionID, dealerID, actorID string) (entities.ChatSession, error)
	CloseSession(ctx context.Context, sessionID string, status entities.ChatStatus, actorID string) (entities.ChatSession, error)
	PostMessage(ctx context.Context, sessionID, senderID, body string) (entities.ChatMessage, error)
	ListSessions(ctx context.Context, f entities.ListFilter) (entities.ChatList, error)
}

type ChatHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ChatService
}

func NewChatHandler(logger *slog.Logger, svc ChatService) *ChatHandler {
	return &ChatHandler{
		logger:   logger.With(slog.String("handler", "chats")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *ChatHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/api/chats", h.OpenSession)
		r.Get("/api/chats/{session_id}", h.GetSession)
		r.Post("/api/chats/{session_id}/messages", h.PostMessage)
		r.Post("/api/chats/{session_id}/close", h.CloseSession)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleAdmin))
		r.Get("/api/admin/chats", h.ListSessions)
		r.Post("/api/admin/chat/assign", h.AssignDealer)
	})
}

func canSeeSession(p auth.Principal, s entities.ChatSession) bool {
	return p.IsAdmin() || s.IsParticipant(p.UserID)
}

// OpenSession открывает чат покупателя, при необходимости по товару.
// @Summary      Открыть чат
// @Tags         chats
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      OpenChatRequest  false  "Товар"
// @Success      201  {object}  ChatSession
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/chats [post]
func (h *ChatHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenChatRequest
	if r.ContentLength != 0 && !decodeBody(w, r, h.validate, &req) {
		return
	}

	session, err := h.svc.OpenSession(r.Context(), principalOf(r).UserID, req.ProductID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to open chat session")
		return
	}

	utils.WriteJSON(w, ChatEntityToJSON(session), http.StatusCreated)
}

// GetSession возвращает чат с сообщениями.
// @Summary      Получить чат
// @Description  Доступен участникам и администраторам
// @Tags         chats
// @Security     BearerAuth
// @Produce      json
// @Param        session_id  path      string  true  "Идентификатор чата"
// @Success      200  {object}  ChatSession
// @Failure      404  {object}  utils.ErrorResponse "Чат не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/chats/{session_id} [get]
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err == nil && !canSeeSession(principalOf(r), session) {
		err = entities.ErrChatNotFound
	}
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get chat session", slog.String("session_id", sessionID))
		return
	}

	utils.WriteJSON(w, ChatEntityToJSON(session), http.StatusOK)
}

// PostMessage отправляет сообщение в чат.
// @Summary      Написать в чат
// @Tags         chats
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        session_id  path      string              true  "Идентификатор чата"
// @Param        request     body      PostMessageRequest  true  "Сообщение"
// @Success      201  {object}  ChatMessage
// @Failure      400  {object}  utils.ErrorResponse "Пустое сообщение"
// @Failure      403  {object}  utils.ErrorResponse "Не участник чата"
// @Failure      404  {object}  utils.ErrorResponse "Чат не найден"
// @Failure      422  {object}  utils.ErrorResponse "Чат закрыт"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/chats/{session_id}/messages [post]
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	var req PostMessageRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	msg, err := h.svc.PostMessage(r.Context(), sessionID, principalOf(r).UserID, req.Body)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to post chat message", slog.String("session_id", sessionID))
		return
	}

	utils.WriteJSON(w, ChatMessageToJSON(msg), http.StatusCreated)
}

// CloseSession завершает или отменяет чат.
// @Summary      Закрыть чат
// @Tags         chats
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        session_id  path      string            true  "Идентификатор чата"
// @Param        request     body      CloseChatRequest  true  "Итоговый статус"
// @Success      200  {object}  ChatSession
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Не участник чата"
// @Failure      404  {object}  utils.ErrorResponse "Чат не найден"
// @Failure      422  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/chats/{session_id}/close [post]
func (h *ChatHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	var req CloseChatRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	p := principalOf(r)
	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err == nil && !canSeeSession(p, session) {
		err = entities.ErrNotParticipant
	}
	if err == nil {
		session, err = h.svc.CloseSession(r.Context(), sessionID, entities.ChatStatus(req.Status), p.UserID)
	}
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to close chat session", slog.String("session_id", sessionID))
		return
	}

	utils.WriteJSON(w, ChatEntityToJSON(session), http.StatusOK)
}

// ListSessions возвращает страницу чатов и счётчики по статусам.
// @Summary      Список чатов
// @Tags         admin-chats
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Поиск"
// @Param        from    query     string  false  "Начало периода"
// @Param        to      query     string  false  "Конец периода"
// @Param        status  query     string  false  "Вкладка статуса, all для всех"
// @Param        limit   query     int     false  "Размер страницы"
// @Param        offset  query     int     false  "Смещение"
// @Success      200  {object}  ChatListResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/chats [get]
func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.svc.ListSessions(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list chat sessions")
		return
	}

	sessions := make([]ChatSession, 0, len(list.Sessions))
	for _, s := range list.Sessions {
		sessions = append(sessions, ChatEntityToJSON(s))
	}

	utils.WriteJSON(w, ChatListResponse{
		Sessions: sessions,
		Total:    list.Total,
		Counts:   list.Counts,
		Page:     pageOf(f),
	}, http.StatusOK)
}

// AssignDealer назначает дилера на чат.
// @Summary      Назначить дилера
// @Description  Назначает дилера на ожидающий чат или переназначает активный
// @Tags         admin-chats
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      AssignDealerRequest  true  "Чат и дилер"
// @Success      200  {object}  ChatSession
// @Failure      400  {object}  utils.ErrorResponse "Пользователь не дилер"
// @Failure      404  {object}  utils.ErrorResponse "Чат не найден"
// @Failure      409  {object}  utils.ErrorResponse "Статус изменён параллельно"
// @Failure      422  {object}  utils.ErrorResponse "Чат закрыт"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/chat/assign [post]
func (h *ChatHandler) AssignDealer(w http.ResponseWriter, r *http.Request) {
	var req AssignDealerRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	session, err := h.svc.AssignDealer(r.Context(), req.SessionID, req.DealerID, principalOf(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to assign dealer", slog.String("session_id", req.SessionID))
		return
	}

	utils.WriteJSON(w, ChatEntityToJSON(session), http.StatusOK)
}
