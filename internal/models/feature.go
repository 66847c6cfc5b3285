package models

// FeatureModel stores feature cards. Icon is a symbolic name the client
// resolves to a UI icon; unknown names fall back to a default there. Order
// is not required to be unique, ties keep insertion order.
type FeatureModel struct {
	Base `bson:",inline"`
	Title       string `json:"title"       bson:"title"       gorm:"not null"`
	Description string `json:"description" bson:"description" gorm:"type:text"`
	Icon        string `json:"icon"        bson:"icon"`
	Order       int    `json:"order"       bson:"order"       gorm:"not null;index"`
}

func (FeatureModel) TableName() string { return "features" }
