package hero

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
	g := rg.Group("/hero")

	g.GET("", h.active)
	g.GET("/history", h.history)
	g.POST("", h.publish)
	g.PUT("/:id", h.update)
}

// GET /hero: the active revision, or JSON null when none exists
func (h *Handler) active(c *gin.Context) {
	content, err := h.st.GetActiveHeroContent(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if content == nil {
		response.OK(c, nil)
		return
	}
	response.OK(c, content)
}

// GET /hero/history: every revision, newest first
func (h *Handler) history(c *gin.Context) {
	items, err := h.st.GetHeroContents(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /hero: publish a new revision, superseding the active one
func (h *Handler) publish(c *gin.Context) {
	var dto CreateHeroContentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	m := models.HeroContentModel{
		Heading:             dto.Heading,
		Subheading:          dto.Subheading,
		PrimaryButtonText:   dto.PrimaryButtonText,
		SecondaryButtonText: dto.SecondaryButtonText,
	}
	if err := h.st.CreateHeroContent(c.Request.Context(), &m); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

// PUT /hero/:id: partial field merge on a single revision
func (h *Handler) update(c *gin.Context) {
	var patch store.HeroContentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	updated, err := h.st.UpdateHeroContent(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "hero content not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, updated)
}
