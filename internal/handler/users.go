package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/middleware"
	"github.com/SergeyBogomolovv/furniture-resale/internal/service"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserService interface {
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int, error)
	UpdateRole(ctx context.Context, userID string, role entities.UserRole, actorID string) (entities.User, error)
}

type UserHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      UserService
}

func NewUserHandler(logger *slog.Logger, svc UserService) *UserHandler {
	return &UserHandler{
		logger:   logger.With(slog.String("handler", "users")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Post("/api/auth/login", h.Login)
	r.With(middleware.RequireAuth).Get("/api/me", h.Me)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleAdmin))
		r.Get("/api/admin/users", h.ListUsers)
		r.Patch("/api/admin/users/{user_id}/role", h.UpdateRole)
	})
}

// Login выдаёт токен по email и паролю.
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Учётные данные"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Неверный email или пароль"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/auth/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to login")
		return
	}

	utils.WriteJSON(w, loginToJSON(res), http.StatusOK)
}

// Me возвращает текущего пользователя.
// @Summary      Текущий пользователь
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Router       /api/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetUserByID(r.Context(), principalOf(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get current user")
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// ListUsers возвращает пользователей.
// @Summary      Список пользователей
// @Tags         admin-users
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Email, имя или телефон"
// @Param        role    query     string  false  "Роль"
// @Param        limit   query     int     false  "Размер страницы"
// @Param        offset  query     int     false  "Смещение"
// @Success      200  {object}  UserListResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePage(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := entities.UserFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Role:   strings.TrimSpace(r.URL.Query().Get("role")),
		Limit:  limit,
		Offset: offset,
	}
	users, total, err := h.svc.ListUsers(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list users")
		return
	}

	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, UserEntityToJSON(u))
	}

	limit, offset = entities.ListFilter{Limit: limit, Offset: offset}.Page()
	utils.WriteJSON(w, UserListResponse{
		Users: out,
		Total: total,
		Page:  PageDescription{Limit: limit, Offset: offset},
	}, http.StatusOK)
}

// UpdateRole меняет роль пользователя, например регистрирует дилера.
// @Summary      Сменить роль
// @Tags         admin-users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user_id  path      string             true  "Идентификатор пользователя"
// @Param        request  body      UpdateRoleRequest  true  "Роль"
// @Success      200  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/users/{user_id}/role [patch]
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req UpdateRoleRequest
	if !decodeBody(w, r, h.validate, &req) {
		return
	}

	user, err := h.svc.UpdateRole(r.Context(), userID, entities.UserRole(req.Role), principalOf(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to update user role", slog.String("user_id", userID))
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}
