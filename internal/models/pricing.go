package models

// PricingPlanModel stores pricing plans. Price is display-ready text, not a
// currency amount. Features is an ordered list of feature lines stored
// verbatim. By convention at most one plan is popular; the store does not
// enforce it.
type PricingPlanModel struct {
	Base `bson:",inline"`
	Name     string      `json:"name"      bson:"name"       gorm:"not null"`
	Price    string      `json:"price"     bson:"price"      gorm:"not null"`
	Features StringArray `json:"features"  bson:"features"   gorm:"type:longtext"`
	Popular  bool        `json:"isPopular" bson:"is_popular" gorm:"default:false"`
}

func (PricingPlanModel) TableName() string { return "pricing_plans" }
