package models

// ContactModel stores contact form submissions. Append-only: the system
// never updates or deletes a submission.
type ContactModel struct {
	Base `bson:",inline"`
	Name    string `json:"name"    bson:"name"    gorm:"not null"`
	Email   string `json:"email"   bson:"email"   gorm:"not null"`
	Message string `json:"message" bson:"message" gorm:"type:text;not null"`
}

func (ContactModel) TableName() string { return "contacts" }
