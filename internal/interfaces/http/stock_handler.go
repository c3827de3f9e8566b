package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jortega-dev/almacen-api/internal/application/usecase"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// StockHandler consulta de existencias (protegido, solo lectura).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Level godoc
// @Summary      Existencia de un producto en una bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id    path  string  true  "ID del producto"
// @Param        warehouse_id  path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.StockItemResponse
// @Router       /api/stock/{warehouse_id}/{product_id} [get]
func (h *StockHandler) Level(c *fiber.Ctx) error {
	out, err := h.uc.Level(c.Params("product_id"), c.Params("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar existencias
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	filter := repository.StockFilter{
		WarehouseID: c.Query("warehouse_id"),
		ProductID:   c.Query("product_id"),
	}
	limit, offset := pagination(c)
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
