// Package mongodb implements the content store over MongoDB. It is selected
// when a mongo URI is configured and no MySQL DSN is present.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marketboost/core/internal/models"
	"github.com/marketboost/core/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds one collection handle per entity.
type Store struct {
	client       *mongo.Client
	contacts     *mongo.Collection
	heroContents *mongo.Collection
	features     *mongo.Collection
	testimonials *mongo.Collection
	pricingPlans *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// Connect creates a client, verifies connectivity and binds collections.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		client:       client,
		contacts:     db.Collection("contacts"),
		heroContents: db.Collection("hero_contents"),
		features:     db.Collection("features"),
		testimonials: db.Collection("testimonials"),
		pricingPlans: db.Collection("pricing_plans"),
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) CreateContact(ctx context.Context, c *models.ContactModel) error {
	c.Stamp()
	_, err := s.contacts.InsertOne(ctx, c)
	return err
}

func (s *Store) GetContacts(ctx context.Context) ([]models.ContactModel, error) {
	return findAll[models.ContactModel](ctx, s.contacts, bson.D{{Key: "created", Value: -1}})
}

func (s *Store) GetActiveHeroContent(ctx context.Context) (*models.HeroContentModel, error) {
	var h models.HeroContentModel
	// Sort pins the result to the latest publish if several documents were
	// ever left active.
	err := s.heroContents.FindOne(ctx, bson.M{"is_active": true},
		options.FindOne().SetSort(bson.D{{Key: "modified", Value: -1}})).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Store) GetHeroContents(ctx context.Context) ([]models.HeroContentModel, error) {
	return findAll[models.HeroContentModel](ctx, s.heroContents, bson.D{{Key: "created", Value: -1}})
}

// CreateHeroContent deactivates all documents, then inserts the new one as
// active. The two steps are not transactional on a standalone server; the
// read path tolerates zero active documents.
func (s *Store) CreateHeroContent(ctx context.Context, h *models.HeroContentModel) error {
	if _, err := s.heroContents.UpdateMany(ctx, bson.M{},
		bson.M{"$set": bson.M{"is_active": false}}); err != nil {
		return err
	}
	h.Stamp()
	h.Active = true
	_, err := s.heroContents.InsertOne(ctx, h)
	return err
}

func (s *Store) UpdateHeroContent(ctx context.Context, id string, patch store.HeroContentPatch) (*models.HeroContentModel, error) {
	set := bson.M{}
	if patch.Heading != nil {
		set["heading"] = *patch.Heading
	}
	if patch.Subheading != nil {
		set["subheading"] = *patch.Subheading
	}
	if patch.PrimaryButtonText != nil {
		set["primary_button_text"] = *patch.PrimaryButtonText
	}
	if patch.SecondaryButtonText != nil {
		set["secondary_button_text"] = *patch.SecondaryButtonText
	}
	if patch.Active != nil {
		set["is_active"] = *patch.Active
	}
	return findAndMerge[models.HeroContentModel](ctx, s.heroContents, id, set)
}

func (s *Store) GetFeatures(ctx context.Context) ([]models.FeatureModel, error) {
	return findAll[models.FeatureModel](ctx, s.features,
		bson.D{{Key: "order", Value: 1}, {Key: "created", Value: 1}})
}

func (s *Store) CreateFeature(ctx context.Context, f *models.FeatureModel) error {
	f.Stamp()
	_, err := s.features.InsertOne(ctx, f)
	return err
}

func (s *Store) UpdateFeature(ctx context.Context, id string, patch store.FeaturePatch) (*models.FeatureModel, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Icon != nil {
		set["icon"] = *patch.Icon
	}
	if patch.Order != nil {
		set["order"] = *patch.Order
	}
	return findAndMerge[models.FeatureModel](ctx, s.features, id, set)
}

func (s *Store) GetTestimonials(ctx context.Context) ([]models.TestimonialModel, error) {
	return findAll[models.TestimonialModel](ctx, s.testimonials, bson.D{{Key: "created", Value: 1}})
}

func (s *Store) CreateTestimonial(ctx context.Context, t *models.TestimonialModel) error {
	t.Stamp()
	_, err := s.testimonials.InsertOne(ctx, t)
	return err
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, patch store.TestimonialPatch) (*models.TestimonialModel, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	return findAndMerge[models.TestimonialModel](ctx, s.testimonials, id, set)
}

func (s *Store) GetPricingPlans(ctx context.Context) ([]models.PricingPlanModel, error) {
	return findAll[models.PricingPlanModel](ctx, s.pricingPlans, bson.D{{Key: "created", Value: 1}})
}

func (s *Store) CreatePricingPlan(ctx context.Context, p *models.PricingPlanModel) error {
	p.Stamp()
	_, err := s.pricingPlans.InsertOne(ctx, p)
	return err
}

func (s *Store) UpdatePricingPlan(ctx context.Context, id string, patch store.PricingPlanPatch) (*models.PricingPlanModel, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Features != nil {
		set["features"] = *patch.Features
	}
	if patch.Popular != nil {
		set["is_popular"] = *patch.Popular
	}
	return findAndMerge[models.PricingPlanModel](ctx, s.pricingPlans, id, set)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, sort bson.D) ([]T, error) {
	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func findAndMerge[T any](ctx context.Context, coll *mongo.Collection, id string, set bson.M) (*T, error) {
	set["modified"] = time.Now()
	var out T
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
