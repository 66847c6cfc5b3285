package models

// TestimonialModel stores customer testimonials, displayed in insertion
// order.
type TestimonialModel struct {
	Base `bson:",inline"`
	Name    string `json:"name"    bson:"name"     gorm:"not null"`
	Role    string `json:"role"    bson:"role"`
	Content string `json:"content" bson:"content"  gorm:"type:text"`
	Image   string `json:"image"   bson:"image"`
}

func (TestimonialModel) TableName() string { return "testimonials" }
