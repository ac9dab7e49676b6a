package handler

import (
	"bytes"
	"errors"
	"net/http"

	"bakery-storefront/internal/domains/catalog/model"
	"bakery-storefront/internal/domains/catalog/service"
	"bakery-storefront/internal/shared/response"
	"bakery-storefront/internal/shared/utils"
	"bakery-storefront/pkg/logger"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListMenu handles GET /menu
func (h *Handler) ListMenu(c *gin.Context) {
	response.Success(c, http.StatusOK, "Menu retrieved successfully", h.service.List())
}

// GetProduct handles GET /menu/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := utils.ParsePositiveInt(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id", err.Error())
		return
	}

	product, err := h.service.Get(id)
	if errors.Is(err, model.ErrProductNotFound) {
		response.NotFound(c, "Product not found")
		return
	}
	if err != nil {
		response.InternalServerError(c, "Failed to get product")
		return
	}

	response.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

// ExportMenu handles GET /menu/export and streams the menu as xlsx.
func (h *Handler) ExportMenu(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportMenu(&buf); err != nil {
		logger.Error("Failed to export menu", err)
		response.InternalServerError(c, "Failed to export menu")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="menu.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
