// Package memory implements the content store over in-process slices. It is
// the zero-dependency backend used when no connection string is configured,
// and the backend the test suite runs against.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/marketboost/core/internal/models"
	"github.com/marketboost/core/internal/store"
)

// Store keeps all collections behind one mutex. State is owned by this
// object, constructed once at startup and injected into handlers.
type Store struct {
	mu           sync.Mutex
	contacts     []models.ContactModel
	heroContents []models.HeroContentModel
	features     []models.FeatureModel
	testimonials []models.TestimonialModel
	pricingPlans []models.PricingPlanModel
}

var _ store.Store = (*Store)(nil)

func New() *Store { return &Store{} }

func (s *Store) CreateContact(ctx context.Context, c *models.ContactModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Stamp()
	s.contacts = append(s.contacts, *c)
	return nil
}

func (s *Store) GetContacts(ctx context.Context) ([]models.ContactModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContactModel, 0, len(s.contacts))
	for i := len(s.contacts) - 1; i >= 0; i-- {
		out = append(out, s.contacts[i])
	}
	return out, nil
}

func (s *Store) GetActiveHeroContent(ctx context.Context) (*models.HeroContentModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Scan newest-first so that even if several rows ended up active the
	// latest publish wins.
	for i := len(s.heroContents) - 1; i >= 0; i-- {
		if s.heroContents[i].Active {
			h := s.heroContents[i]
			return &h, nil
		}
	}
	return nil, nil
}

func (s *Store) GetHeroContents(ctx context.Context) ([]models.HeroContentModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HeroContentModel, 0, len(s.heroContents))
	for i := len(s.heroContents) - 1; i >= 0; i-- {
		out = append(out, s.heroContents[i])
	}
	return out, nil
}

// CreateHeroContent holds the lock across deactivate and insert, so the
// publish is atomic for every reader of this store.
func (s *Store) CreateHeroContent(ctx context.Context, h *models.HeroContentModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.heroContents {
		s.heroContents[i].Active = false
	}
	h.Stamp()
	h.Active = true
	s.heroContents = append(s.heroContents, *h)
	return nil
}

func (s *Store) UpdateHeroContent(ctx context.Context, id string, patch store.HeroContentPatch) (*models.HeroContentModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.heroContents {
		if s.heroContents[i].ID != id {
			continue
		}
		h := &s.heroContents[i]
		if patch.Heading != nil {
			h.Heading = *patch.Heading
		}
		if patch.Subheading != nil {
			h.Subheading = *patch.Subheading
		}
		if patch.PrimaryButtonText != nil {
			h.PrimaryButtonText = *patch.PrimaryButtonText
		}
		if patch.SecondaryButtonText != nil {
			h.SecondaryButtonText = *patch.SecondaryButtonText
		}
		if patch.Active != nil {
			h.Active = *patch.Active
		}
		h.UpdatedAt = time.Now()
		out := *h
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetFeatures(ctx context.Context) ([]models.FeatureModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FeatureModel, len(s.features))
	copy(out, s.features)
	// Stable sort keeps insertion order for equal order values.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *Store) CreateFeature(ctx context.Context, f *models.FeatureModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.Stamp()
	s.features = append(s.features, *f)
	return nil
}

func (s *Store) UpdateFeature(ctx context.Context, id string, patch store.FeaturePatch) (*models.FeatureModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.features {
		if s.features[i].ID != id {
			continue
		}
		f := &s.features[i]
		if patch.Title != nil {
			f.Title = *patch.Title
		}
		if patch.Description != nil {
			f.Description = *patch.Description
		}
		if patch.Icon != nil {
			f.Icon = *patch.Icon
		}
		if patch.Order != nil {
			f.Order = *patch.Order
		}
		f.UpdatedAt = time.Now()
		out := *f
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetTestimonials(ctx context.Context) ([]models.TestimonialModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TestimonialModel, len(s.testimonials))
	copy(out, s.testimonials)
	return out, nil
}

func (s *Store) CreateTestimonial(ctx context.Context, t *models.TestimonialModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Stamp()
	s.testimonials = append(s.testimonials, *t)
	return nil
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, patch store.TestimonialPatch) (*models.TestimonialModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.testimonials {
		if s.testimonials[i].ID != id {
			continue
		}
		t := &s.testimonials[i]
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Role != nil {
			t.Role = *patch.Role
		}
		if patch.Content != nil {
			t.Content = *patch.Content
		}
		if patch.Image != nil {
			t.Image = *patch.Image
		}
		t.UpdatedAt = time.Now()
		out := *t
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetPricingPlans(ctx context.Context) ([]models.PricingPlanModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PricingPlanModel, len(s.pricingPlans))
	copy(out, s.pricingPlans)
	return out, nil
}

func (s *Store) CreatePricingPlan(ctx context.Context, p *models.PricingPlanModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Stamp()
	s.pricingPlans = append(s.pricingPlans, *p)
	return nil
}

func (s *Store) UpdatePricingPlan(ctx context.Context, id string, patch store.PricingPlanPatch) (*models.PricingPlanModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pricingPlans {
		if s.pricingPlans[i].ID != id {
			continue
		}
		p := &s.pricingPlans[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Features != nil {
			p.Features = append(models.StringArray{}, *patch.Features...)
		}
		if patch.Popular != nil {
			p.Popular = *patch.Popular
		}
		p.UpdatedAt = time.Now()
		out := *p
		return &out, nil
	}
	return nil, store.ErrNotFound
}
