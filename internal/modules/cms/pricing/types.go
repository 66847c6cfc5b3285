package pricing

// CreatePricingPlanDTO is the pricing plan payload. Price is display-ready
// text (e.g. "$29"). Feature lines are stored in the supplied order with no
// dedup.
type CreatePricingPlanDTO struct {
	Name     string   `json:"name"      binding:"required"`
	Price    string   `json:"price"     binding:"required"`
	Features []string `json:"features"  binding:"required"`
	Popular  bool     `json:"isPopular"`
}
