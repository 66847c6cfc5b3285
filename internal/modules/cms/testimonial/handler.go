package testimonial

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
	g := rg.Group("/testimonials")

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

// GET /testimonials: insertion order
func (h *Handler) list(c *gin.Context) {
	items, err := h.st.GetTestimonials(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /testimonials
func (h *Handler) create(c *gin.Context) {
	var dto CreateTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	m := models.TestimonialModel{
		Name:    dto.Name,
		Role:    dto.Role,
		Content: dto.Content,
		Image:   dto.Image,
	}
	if err := h.st.CreateTestimonial(c.Request.Context(), &m); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

// PUT /testimonials/:id
func (h *Handler) update(c *gin.Context) {
	var patch store.TestimonialPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	updated, err := h.st.UpdateTestimonial(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "testimonial not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, updated)
}
