package handler

import (
	"net/http"

	"inventaris/internal/apierror"
	"inventaris/internal/dto"
	"inventaris/internal/service"

	"github.com/gin-gonic/gin"
)

type StokHandler struct{ svc service.StokService }

func NewStokHandler(svc service.StokService) *StokHandler {
	return &StokHandler{svc: svc}
}

// List GET /api/stock
func (h *StokHandler) List(c *gin.Context) {
	var filter dto.StokFilter
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

// Create POST /api/stock — upsert: repeated creates accumulate quantity.
func (h *StokHandler) Create(c *gin.Context) {
	var req dto.CreateStokRequest
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

// Update PUT /api/stock/:kode
func (h *StokHandler) Update(c *gin.Context) {
	var req dto.UpdateStokRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("kode"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /api/stock/:kode
func (h *StokHandler) Delete(c *gin.Context) {
	resp, err := h.svc.Delete(c.Request.Context(), c.Param("kode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
