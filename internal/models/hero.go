package models

// HeroContentModel stores hero section revisions. At most one row is active
// at any time; publishing a new revision deactivates all others. Inactive
// rows are retained as history, never deleted.
type HeroContentModel struct {
	Base `bson:",inline"`
	Heading             string `json:"heading"             bson:"heading"               gorm:"not null"`
	Subheading          string `json:"subheading"          bson:"subheading"            gorm:"type:text"`
	PrimaryButtonText   string `json:"primaryButtonText"   bson:"primary_button_text"`
	SecondaryButtonText string `json:"secondaryButtonText" bson:"secondary_button_text"`
	Active              bool   `json:"isActive"            bson:"is_active"             gorm:"default:false;index"`
}

func (HeroContentModel) TableName() string { return "hero_contents" }
