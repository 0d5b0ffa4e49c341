package turno

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nahuelfigueredo/app-web-doctor/internal/handler"
	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
	"github.com/nahuelfigueredo/app-web-doctor/internal/repository"
	"github.com/nahuelfigueredo/app-web-doctor/internal/service/turno"
)

type Handler struct {
	svc *turno.Service
}

func NewHandler(svc *turno.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes binds the unauthenticated turno endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/turnos", h.CreateTurno)
	r.GET("/turnos-public", h.ListPublicSlots)
}

// RegisterProtectedRoutes binds the endpoints gated by the auth middleware.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/turnos", h.ListTurnos)
	r.PATCH("/turnos/:id", h.UpdateEstado)
}

func (h *Handler) CreateTurno(c *gin.Context) {
	var req model.CreateTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("faltan campos requeridos"))
		return
	}

	created, err := h.svc.CreateTurno(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("el turno para esa fecha y hora ya está ocupado"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("no se pudo crear el turno"))
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListPublicSlots(c *gin.Context) {
	slots, err := h.svc.ListPublicSlots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("no se pudieron cargar los turnos"))
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *Handler) ListTurnos(c *gin.Context) {
	turnos, err := h.svc.ListTurnos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("no se pudieron cargar los turnos"))
		return
	}

	c.JSON(http.StatusOK, turnos)
}

func (h *Handler) UpdateEstado(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("id de turno inválido"))
		return
	}

	var req model.UpdateEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("cuerpo de la petición inválido"))
		return
	}

	estado := ""
	if req.Estado != nil {
		estado = *req.Estado
	}

	updated, err := h.svc.UpdateEstado(c.Request.Context(), id, estado)
	if err != nil {
		if errors.Is(err, repository.ErrTurnoNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("turno no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("no se pudo actualizar el turno"))
		return
	}

	c.JSON(http.StatusOK, updated)
}
