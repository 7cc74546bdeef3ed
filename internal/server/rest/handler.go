// Package rest is the HTTP transport shell. It validates request shape,
// resolves the caller's identity through the auth middleware, calls into
// the services, and renders JSON envelopes; it holds no business logic of
// its own.
package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/okatkov/lookbook/internal/common"
	"github.com/okatkov/lookbook/internal/logging"
	"github.com/okatkov/lookbook/internal/server/services"
)

type Handler struct {
	logger   logging.Logger
	users    *services.UserService
	posts    *services.PostService
	looks    *services.LookService
	items    *services.ItemService
	comments *services.CommentService
}

func NewHandler(
	logger logging.Logger,
	users *services.UserService,
	posts *services.PostService,
	looks *services.LookService,
	items *services.ItemService,
	comments *services.CommentService,
) *Handler {
	return &Handler{
		logger:   logger,
		users:    users,
		posts:    posts,
		looks:    looks,
		items:    items,
		comments: comments,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.POST("/register", h.handleRegister)
	e.POST("/login", h.handleLogin)

	g := e.Group("", auth.RequireUser)
	g.POST("/posts", h.handlePostCreate)
	g.GET("/posts", h.handlePostList)
	g.GET("/posts/:uid", h.handlePostGet)
	g.PUT("/posts/:uid", h.handlePostUpdate)
	g.DELETE("/posts/:uid", h.handlePostDelete)

	g.POST("/looks", h.handleLookCreate)
	g.GET("/looks", h.handleLookList)
	g.GET("/looks/:uid", h.handleLookGet)
	g.PUT("/looks/:uid", h.handleLookUpdate)
	g.DELETE("/looks/:uid", h.handleLookDelete)

	g.POST("/items", h.handleItemCreate)
	g.GET("/items", h.handleItemList)
	g.GET("/items/:uid", h.handleItemGet)
	g.PUT("/items/:uid", h.handleItemUpdate)
	g.DELETE("/items/:uid", h.handleItemDelete)

	g.POST("/comments", h.handleCommentCreate)
	g.GET("/comments", h.handleCommentList)
	g.GET("/comments/:uid", h.handleCommentGet)
	g.PUT("/comments/:uid", h.handleCommentUpdate)
	g.DELETE("/comments/:uid", h.handleCommentDelete)
}

// requireFields reports the missing/empty ones of the given name→value
// pairs. Presence validation lives here, at the shell boundary; the
// services assume validated input.
func requireFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func missingFieldsResponse(c echo.Context, missing []string) error {
	return c.JSON(http.StatusBadRequest,
		errEnvelope("Required field(s) "+strings.Join(missing, ", ")+" is missing or empty"))
}

func notFoundResponse(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errEnvelope("The requested resource doesn't exists"))
}

type registerRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *Handler) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{
		"name": req.Name, "email": req.Email, "password": req.Password,
	}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	_, err := h.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return c.JSON(http.StatusOK, errEnvelope("Sorry, this email already existed"))
		}
		h.logger.Error(c.Request().Context(), "registration failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("Oops! An error occurred while registering"))
	}

	return c.JSON(http.StatusCreated, okEnvelope("You are successfully registered"))
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *Handler) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{
		"email": req.Email, "password": req.Password,
	}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	user, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrBadCredentials) {
			return c.JSON(http.StatusOK, errEnvelope("Login failed. Incorrect credentials"))
		}
		h.logger.Error(c.Request().Context(), "login failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("An error occurred. Please try again"))
	}

	return c.JSON(http.StatusOK, userPayload{
		envelope:  okEnvelope("You are successfully logged"),
		UID:       user.UID,
		Name:      user.Name,
		Email:     user.Email,
		APIKey:    user.APIKey,
		Birthday:  user.Birthday,
		Location:  user.Location,
		About:     user.About,
		UpdatedAt: user.UpdatedAt,
		CreatedAt: user.CreatedAt,
	})
}
