// Package mysql implements the content store over MySQL via GORM. It is
// selected when a database DSN is configured.
package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/marketboost/core/internal/models"
	"github.com/marketboost/core/internal/store"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps a GORM connection.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// Connect opens a MySQL connection and runs auto-migration for all content
// models.
func Connect(dsn string, verbose bool) (*Store, error) {
	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               dsn,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := db.AutoMigrate(
		&models.ContactModel{},
		&models.HeroContentModel{},
		&models.FeatureModel{},
		&models.TestimonialModel{},
		&models.PricingPlanModel{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection, for tests.
func NewWithDB(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) CreateContact(ctx context.Context, c *models.ContactModel) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) GetContacts(ctx context.Context) ([]models.ContactModel, error) {
	var items []models.ContactModel
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Store) GetActiveHeroContent(ctx context.Context) (*models.HeroContentModel, error) {
	var h models.HeroContentModel
	// ORDER BY pins the result to the latest publish even if a crash
	// between deactivate and insert ever left several rows active.
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("updated_at DESC").
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Store) GetHeroContents(ctx context.Context) ([]models.HeroContentModel, error) {
	var items []models.HeroContentModel
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

// CreateHeroContent runs deactivate and insert in one transaction, so a
// crash mid-publish cannot leave zero active rows.
func (s *Store) CreateHeroContent(ctx context.Context, h *models.HeroContentModel) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.HeroContentModel{}).
			Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}
		h.Active = true
		return tx.Create(h).Error
	})
}

func (s *Store) UpdateHeroContent(ctx context.Context, id string, patch store.HeroContentPatch) (*models.HeroContentModel, error) {
	var h models.HeroContentModel
	if err := s.firstByID(ctx, &h, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if patch.Heading != nil {
		updates["heading"] = *patch.Heading
	}
	if patch.Subheading != nil {
		updates["subheading"] = *patch.Subheading
	}
	if patch.PrimaryButtonText != nil {
		updates["primary_button_text"] = *patch.PrimaryButtonText
	}
	if patch.SecondaryButtonText != nil {
		updates["secondary_button_text"] = *patch.SecondaryButtonText
	}
	if patch.Active != nil {
		updates["active"] = *patch.Active
	}
	if err := s.db.WithContext(ctx).Model(&h).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Store) GetFeatures(ctx context.Context) ([]models.FeatureModel, error) {
	var items []models.FeatureModel
	// created_at breaks order ties by insertion; id keeps it total.
	err := s.db.WithContext(ctx).
		Order("`order` ASC, created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (s *Store) CreateFeature(ctx context.Context, f *models.FeatureModel) error {
	return s.db.WithContext(ctx).Create(f).Error
}

func (s *Store) UpdateFeature(ctx context.Context, id string, patch store.FeaturePatch) (*models.FeatureModel, error) {
	var f models.FeatureModel
	if err := s.firstByID(ctx, &f, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}
	if err := s.db.WithContext(ctx).Model(&f).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) GetTestimonials(ctx context.Context) ([]models.TestimonialModel, error) {
	var items []models.TestimonialModel
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&items).Error
	return items, err
}

func (s *Store) CreateTestimonial(ctx context.Context, t *models.TestimonialModel) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, patch store.TestimonialPatch) (*models.TestimonialModel, error) {
	var t models.TestimonialModel
	if err := s.firstByID(ctx, &t, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if err := s.db.WithContext(ctx).Model(&t).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetPricingPlans(ctx context.Context) ([]models.PricingPlanModel, error) {
	var items []models.PricingPlanModel
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&items).Error
	return items, err
}

func (s *Store) CreatePricingPlan(ctx context.Context, p *models.PricingPlanModel) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) UpdatePricingPlan(ctx context.Context, id string, patch store.PricingPlanPatch) (*models.PricingPlanModel, error) {
	var p models.PricingPlanModel
	if err := s.firstByID(ctx, &p, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Features != nil {
		updates["features"] = models.StringArray(*patch.Features)
	}
	if patch.Popular != nil {
		updates["popular"] = *patch.Popular
	}
	if err := s.db.WithContext(ctx).Model(&p).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) firstByID(ctx context.Context, dest interface{}, id string) error {
	err := s.db.WithContext(ctx).First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
