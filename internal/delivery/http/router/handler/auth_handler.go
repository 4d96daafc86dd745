// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"matcha/internal/delivery/http/response"
	"matcha/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterRequest is the transport payload for registration. The core never
// parses raw bodies; this DTO is bound and shape-checked here, then handed
// over as a usecase input.
type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"required"`
	Repassword string `json:"repassword" validate:"required"`
}

// RegisterResponse carries the store-assigned identifier of the new user.
type RegisterResponse struct {
	ID int64 `json:"id"`
}

// AuthHandler holds dependencies for registration-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		Repassword: req.Repassword,
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		// The error handler maps the taxonomy onto status codes.
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{ID: output.UserID}, "User registered successfully")
}
