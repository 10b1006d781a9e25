package handler

import (
	"net/http"

	"github.com/Saquero/dndcomhoy/internal/apierror"
	"github.com/Saquero/dndcomhoy/internal/dto"
	"github.com/Saquero/dndcomhoy/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AdminHandler struct{ svc service.AdminService }

func NewAdminHandler(svc service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

// Login POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Email y contraseña son requeridos"))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar POST /admin/register
func (h *AdminHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	admin, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	// Registration does not imply login: the id comes back, never a token.
	c.JSON(http.StatusCreated, dto.RegistroResponse{
		Mensaje: "Admin creado con éxito",
		AdminID: admin.ID,
	})
}

// Listar GET /admin
func (h *AdminHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /admin/:id
func (h *AdminHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /admin/:id
func (h *AdminHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /admin/:id
func (h *AdminHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Admin eliminado correctamente"})
}
