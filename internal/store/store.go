package store

import (
	"context"
	"errors"

	"github.com/marketboost/core/internal/models"
)

// ErrNotFound is returned by Update operations when the identifier does not
// resolve to an existing record.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract shared by every backend. Route handlers
// depend only on this interface; the concrete backend (memory, MySQL,
// MongoDB) is chosen once at startup and never at call time.
//
// Create operations assign the ID and timestamps on the passed model.
// Update operations apply a partial field merge and return the updated
// record, or ErrNotFound. Any other error means the backend is unreachable
// and is surfaced to the caller unchanged.
type Store interface {
	CreateContact(ctx context.Context, c *models.ContactModel) error
	GetContacts(ctx context.Context) ([]models.ContactModel, error)

	// GetActiveHeroContent returns the single active hero revision, or
	// (nil, nil) when none exists. If a race left several rows active it
	// still returns exactly one, deterministically.
	GetActiveHeroContent(ctx context.Context) (*models.HeroContentModel, error)
	// GetHeroContents returns every hero revision, newest first.
	GetHeroContents(ctx context.Context) ([]models.HeroContentModel, error)
	// CreateHeroContent publishes: it deactivates every existing revision,
	// then inserts the new one as active. Prior revisions stay in storage
	// as inactive history.
	CreateHeroContent(ctx context.Context, h *models.HeroContentModel) error
	// UpdateHeroContent is a pure field merge; it never changes which
	// revision is active unless the patch sets Active explicitly.
	UpdateHeroContent(ctx context.Context, id string, patch HeroContentPatch) (*models.HeroContentModel, error)

	// GetFeatures returns features sorted ascending by display order;
	// equal orders keep insertion order.
	GetFeatures(ctx context.Context) ([]models.FeatureModel, error)
	CreateFeature(ctx context.Context, f *models.FeatureModel) error
	UpdateFeature(ctx context.Context, id string, patch FeaturePatch) (*models.FeatureModel, error)

	GetTestimonials(ctx context.Context) ([]models.TestimonialModel, error)
	CreateTestimonial(ctx context.Context, t *models.TestimonialModel) error
	UpdateTestimonial(ctx context.Context, id string, patch TestimonialPatch) (*models.TestimonialModel, error)

	GetPricingPlans(ctx context.Context) ([]models.PricingPlanModel, error)
	CreatePricingPlan(ctx context.Context, p *models.PricingPlanModel) error
	UpdatePricingPlan(ctx context.Context, id string, patch PricingPlanPatch) (*models.PricingPlanModel, error)
}

// HeroContentPatch is a partial update; nil fields are left untouched.
type HeroContentPatch struct {
	Heading             *string `json:"heading"`
	Subheading          *string `json:"subheading"`
	PrimaryButtonText   *string `json:"primaryButtonText"`
	SecondaryButtonText *string `json:"secondaryButtonText"`
	Active              *bool   `json:"isActive"`
}

type FeaturePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

type TestimonialPatch struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

type PricingPlanPatch struct {
	Name     *string   `json:"name"`
	Price    *string   `json:"price"`
	Features *[]string `json:"features"`
	Popular  *bool     `json:"isPopular"`
}
