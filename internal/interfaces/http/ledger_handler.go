package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jortega-dev/almacen-api/internal/application/usecase"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// LedgerHandler consulta del kardex (protegido, solo lectura).
type LedgerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Listar asientos del kardex
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        kind        query  string  false  "receipt | delivery | transfer | adjustment"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.LedgerListResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	filter := repository.LedgerFilter{
		ProductID: c.Query("product_id"),
		Kind:      c.Query("kind"),
	}
	limit, offset := pagination(c)
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
