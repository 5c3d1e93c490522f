package model

import "time"

// Teacher is an observable staff member
type Teacher struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Name         string     `json:"name" bson:"name" validate:"required,max=100"`
	Email        string     `json:"email" bson:"email" validate:"required,email"`
	Department   string     `json:"department" bson:"department" validate:"required"`
	Grade        string     `json:"grade,omitempty" bson:"grade,omitempty"`
	Subjects     []string   `json:"subjects" bson:"subjects" validate:"min=1"`
	CurrentClass *ClassInfo `json:"currentClass,omitempty" bson:"currentClass,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}
