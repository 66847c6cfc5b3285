package contact

// CreateContactDTO is the contact form payload. Submissions are append-only
// and never surfaced back to the sender, so validation is the only gate.
type CreateContactDTO struct {
	Name    string `json:"name"    binding:"required"`
	Email   string `json:"email"   binding:"required,email"`
	Message string `json:"message" binding:"required,min=10"`
}
