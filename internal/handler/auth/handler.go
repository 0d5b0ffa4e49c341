package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahuelfigueredo/app-web-doctor/internal/handler"
	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
	"github.com/nahuelfigueredo/app-web-doctor/internal/service/auth"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register-medico", h.RegisterMedico)
	r.POST("/login", h.Login)
}

func (h *Handler) RegisterMedico(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("email y password son requeridos"))
		return
	}

	if err := h.svc.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrMedicoExists) {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("ya hay un médico registrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("no se pudo registrar el médico"))
		return
	}

	c.JSON(http.StatusCreated, handler.NewMessageResponse("médico registrado correctamente"))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("email y password son requeridos"))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNoMedico):
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("no hay ningún médico registrado"))
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("credenciales inválidas"))
		default:
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("no se pudo iniciar sesión"))
		}
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{Token: token})
}
