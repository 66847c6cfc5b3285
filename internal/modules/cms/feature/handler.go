package feature

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
	g := rg.Group("/features")

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

// GET /features: sorted ascending by display order
func (h *Handler) list(c *gin.Context) {
	items, err := h.st.GetFeatures(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /features
func (h *Handler) create(c *gin.Context) {
	var dto CreateFeatureDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	m := models.FeatureModel{
		Title:       dto.Title,
		Description: dto.Description,
		Icon:        dto.Icon,
		Order:       *dto.Order,
	}
	if err := h.st.CreateFeature(c.Request.Context(), &m); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

// PUT /features/:id
func (h *Handler) update(c *gin.Context) {
	var patch store.FeaturePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	updated, err := h.st.UpdateFeature(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "feature not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, updated)
}
