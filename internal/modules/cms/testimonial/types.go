package testimonial

// CreateTestimonialDTO is the testimonial payload.
type CreateTestimonialDTO struct {
	Name    string `json:"name"    binding:"required"`
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"   binding:"required,url"`
}
