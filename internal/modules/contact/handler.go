package contact

import (
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
	g := rg.Group("/contact")

	g.POST("", h.create)
	g.GET("", h.list)
}

// POST /contact: store a contact form submission
func (h *Handler) create(c *gin.Context) {
	var dto CreateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, validate.FirstError(err))
		return
	}

	m := models.ContactModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Message: dto.Message,
	}
	if err := h.st.CreateContact(c.Request.Context(), &m); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

// GET /contact: submissions, newest first
func (h *Handler) list(c *gin.Context) {
	items, err := h.st.GetContacts(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}
