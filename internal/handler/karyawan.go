package handler

import (
	"net/http"
	"strconv"

	"inventaris/internal/apierror"
	"inventaris/internal/dto"
	"inventaris/internal/service"

	"github.com/gin-gonic/gin"
)

type KaryawanHandler struct{ svc service.KaryawanService }

func NewKaryawanHandler(svc service.KaryawanService) *KaryawanHandler {
	return &KaryawanHandler{svc: svc}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("id tidak valid"))
		return 0, false
	}
	return uint(id), true
}

// List GET /api/employees
func (h *KaryawanHandler) List(c *gin.Context) {
	var filter dto.KaryawanFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/employees
func (h *KaryawanHandler) Create(c *gin.Context) {
	var req dto.CreateKaryawanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/employees/:id
func (h *KaryawanHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateKaryawanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /api/employees/:id
func (h *KaryawanHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
