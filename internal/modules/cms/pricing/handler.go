package pricing

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/marketboost/core/internal/models"
	"github.com/marketboost/core/internal/pkg/response"
	"github.com/marketboost/core/internal/pkg/validate"
	"github.com/marketboost/core/internal/store"
)

type Handler struct {
	st store.Store
}

func NewHandler(st store.Store) *Handler { return &Handler{st: st} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/pricing")

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

// GET /pricing: insertion order
func (h *Handler) list(c *gin.Context) {
	items, err := h.st.GetPricingPlans(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /pricing
func (h *Handler) create(c *gin.Context) {
	var dto CreatePricingPlanDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	m := models.PricingPlanModel{
		Name:     dto.Name,
		Price:    dto.Price,
		Features: models.StringArray(dto.Features),
		Popular:  dto.Popular,
	}
	if err := h.st.CreatePricingPlan(c.Request.Context(), &m); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

// PUT /pricing/:id
func (h *Handler) update(c *gin.Context) {
	var patch store.PricingPlanPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	updated, err := h.st.UpdatePricingPlan(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "pricing plan not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, updated)
}
