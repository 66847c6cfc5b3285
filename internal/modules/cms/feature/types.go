package feature

// CreateFeatureDTO is the feature card payload. Order is a pointer so that
// an explicit 0 passes the required check. Icon is a symbolic name; the
// client falls back to a default icon for names it does not recognize.
type CreateFeatureDTO struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon"        binding:"required"`
	Order       *int   `json:"order"       binding:"required"`
}
