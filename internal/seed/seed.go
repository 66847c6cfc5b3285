// Package seed populates default landing-page content into an empty store
// on first run. It is idempotent: collections that already hold content are
// left untouched, so restarting the process never duplicates data.
package seed

import (
	"context"

	"github.com/marketboost/core/internal/models"
	"github.com/marketboost/core/internal/store"
	"go.uber.org/zap"
)

// Run seeds each empty collection. Errors are logged and do not abort
// startup; a collection that failed to seed simply reads back empty.
func Run(ctx context.Context, st store.Store, log *zap.Logger) {
	seedHeroContent(ctx, st, log)
	seedFeatures(ctx, st, log)
	seedTestimonials(ctx, st, log)
	seedPricingPlans(ctx, st, log)
}

func seedHeroContent(ctx context.Context, st store.Store, log *zap.Logger) {
	// Inactive history counts as content, so the emptiness probe lists all
	// revisions rather than just the active one.
	existing, err := st.GetHeroContents(ctx)
	if err != nil {
		log.Warn("seed: hero content check failed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}
	h := defaultHeroContent()
	if err := st.CreateHeroContent(ctx, &h); err != nil {
		log.Warn("seed: hero content insert failed", zap.Error(err))
		return
	}
	log.Info("seed: hero content inserted")
}

func seedFeatures(ctx context.Context, st store.Store, log *zap.Logger) {
	existing, err := st.GetFeatures(ctx)
	if err != nil {
		log.Warn("seed: features check failed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}
	for _, f := range defaultFeatures() {
		if err := st.CreateFeature(ctx, &f); err != nil {
			log.Warn("seed: feature insert failed", zap.String("title", f.Title), zap.Error(err))
			return
		}
	}
	log.Info("seed: features inserted", zap.Int("count", len(defaultFeatures())))
}

func seedTestimonials(ctx context.Context, st store.Store, log *zap.Logger) {
	existing, err := st.GetTestimonials(ctx)
	if err != nil {
		log.Warn("seed: testimonials check failed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}
	for _, t := range defaultTestimonials() {
		if err := st.CreateTestimonial(ctx, &t); err != nil {
			log.Warn("seed: testimonial insert failed", zap.String("name", t.Name), zap.Error(err))
			return
		}
	}
	log.Info("seed: testimonials inserted", zap.Int("count", len(defaultTestimonials())))
}

func seedPricingPlans(ctx context.Context, st store.Store, log *zap.Logger) {
	existing, err := st.GetPricingPlans(ctx)
	if err != nil {
		log.Warn("seed: pricing plans check failed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}
	for _, p := range defaultPricingPlans() {
		if err := st.CreatePricingPlan(ctx, &p); err != nil {
			log.Warn("seed: pricing plan insert failed", zap.String("name", p.Name), zap.Error(err))
			return
		}
	}
	log.Info("seed: pricing plans inserted", zap.Int("count", len(defaultPricingPlans())))
}

func defaultHeroContent() models.HeroContentModel {
	return models.HeroContentModel{
		Heading:             "Create beautiful websites without code",
		Subheading:          "Build, launch, and grow your business online with our powerful platform. Join thousands of successful companies who trust us.",
		PrimaryButtonText:   "Start Building Free",
		SecondaryButtonText: "Watch Demo",
	}
}

func defaultFeatures() []models.FeatureModel {
	return []models.FeatureModel{
		{
			Title:       "Modern Technology",
			Description: "Built with the latest tech stack for optimal performance and scalability. Stay ahead with cutting-edge solutions.",
			Icon:        "Laptop",
			Order:       1,
		},
		{
			Title:       "Secure Platform",
			Description: "Enterprise-grade security to protect your data and privacy. We take security seriously so you don't have to worry.",
			Icon:        "Shield",
			Order:       2,
		},
		{
			Title:       "Fast & Efficient",
			Description: "Optimized for speed and exceptional user experience. Your visitors will enjoy lightning-fast page loads.",
			Icon:        "Zap",
			Order:       3,
		},
		{
			Title:       "Team Collaboration",
			Description: "Tools designed for seamless team coordination. Work together efficiently no matter where your team is located.",
			Icon:        "Users",
			Order:       4,
		},
	}
}

func defaultTestimonials() []models.TestimonialModel {
	return []models.TestimonialModel{
		{
			Name:    "Sarah Johnson",
			Role:    "CEO, TechStart Inc.",
			Content: "MarketBoost transformed our online presence. The sleek design and powerful CMS made it easy to showcase our products and connect with customers.",
			Image:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&auto=format&fit=crop",
		},
		{
			Name:    "Michael Chen",
			Role:    "Marketing Director, GrowthLabs",
			Content: "The conversion rate on our landing page increased by 45% after switching to MarketBoost. The design is not only beautiful but strategically effective.",
			Image:   "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=400&h=400&auto=format&fit=crop",
		},
		{
			Name:    "Emily Rodriguez",
			Role:    "Founder, DesignCraft",
			Content: "As a design agency, we have high standards. MarketBoost exceeded our expectations with its flexibility and attention to detail. Highly recommended!",
			Image:   "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400&h=400&auto=format&fit=crop",
		},
	}
}

func defaultPricingPlans() []models.PricingPlanModel {
	return []models.PricingPlanModel{
		{
			Name:  "Starter",
			Price: "$29",
			Features: models.StringArray{
				"1 Website",
				"5 GB Storage",
				"10,000 Monthly Visitors",
				"Basic Analytics",
				"24/7 Support",
			},
		},
		{
			Name:  "Professional",
			Price: "$79",
			Features: models.StringArray{
				"5 Websites",
				"20 GB Storage",
				"100,000 Monthly Visitors",
				"Advanced Analytics",
				"Priority Support",
				"Custom Domain",
			},
			Popular: true,
		},
		{
			Name:  "Enterprise",
			Price: "$199",
			Features: models.StringArray{
				"Unlimited Websites",
				"100 GB Storage",
				"Unlimited Monthly Visitors",
				"Premium Analytics",
				"Dedicated Support",
				"Custom Domain",
				"White Labeling",
			},
		},
	}
}
