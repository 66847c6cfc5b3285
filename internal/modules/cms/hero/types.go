package hero

// CreateHeroContentDTO is the publish payload. The new revision always
// becomes active; the flag is not caller-controlled on create.
type CreateHeroContentDTO struct {
	Heading             string `json:"heading"             binding:"required"`
	Subheading          string `json:"subheading"          binding:"required"`
	PrimaryButtonText   string `json:"primaryButtonText"   binding:"required"`
	SecondaryButtonText string `json:"secondaryButtonText" binding:"required"`
}
