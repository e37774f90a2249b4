package handler

import (
	"net/http"

	"inventaris/internal/apierror"
	"inventaris/internal/dto"
	"inventaris/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdukHandler struct{ svc service.ProdukService }

func NewProdukHandler(svc service.ProdukService) *ProdukHandler {
	return &ProdukHandler{svc: svc}
}

// List GET /api/products
func (h *ProdukHandler) List(c *gin.Context) {
	var filter dto.ProdukFilter
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

// Create POST /api/products
func (h *ProdukHandler) Create(c *gin.Context) {
	var req dto.CreateProdukRequest
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

// Update PUT /api/products/:kode
func (h *ProdukHandler) Update(c *gin.Context) {
	var req dto.UpdateProdukRequest
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

// Delete DELETE /api/products/:kode
func (h *ProdukHandler) Delete(c *gin.Context) {
	resp, err := h.svc.Delete(c.Request.Context(), c.Param("kode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
