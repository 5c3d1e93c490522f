package model

import "time"

// FrameworkStatus is the lifecycle status of a framework
type FrameworkStatus string

const (
	FrameworkActive   FrameworkStatus = "active"
	FrameworkInactive FrameworkStatus = "inactive"
	FrameworkDraft    FrameworkStatus = "draft"
)

// QuestionType defines how a look-for is answered
type QuestionType string

const (
	QuestionTypeRating       QuestionType = "rating"
	QuestionTypeText         QuestionType = "text"
	QuestionTypeMultiSelect  QuestionType = "multiselect"
	QuestionTypeSingleSelect QuestionType = "single-select"
	QuestionTypeYesNo        QuestionType = "yes-no"
)

// Framework is a named, versioned observation rubric
type Framework struct {
	ID           string          `json:"id" bson:"_id,omitempty"`
	Name         string          `json:"name" bson:"name" validate:"required,max=100"`
	Description  string          `json:"description" bson:"description" validate:"required,max=500"`
	Version      string          `json:"version" bson:"version" validate:"required"`
	Status       FrameworkStatus `json:"status" bson:"status"`
	LastModified time.Time       `json:"lastModified" bson:"lastModified"`
	Tags         []string        `json:"tags" bson:"tags"`
	Sections     []Section       `json:"sections" bson:"sections"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Section groups questions within a framework.
// Section weights across a framework should sum to 100; this is a soft
// validation rule, not enforced at save time.
type Section struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title" validate:"required,max=100"`
	Description string     `json:"description" bson:"description" validate:"required"`
	Weight      int        `json:"weight" bson:"weight" validate:"min=0,max=100"`
	Questions   []Question `json:"questions" bson:"questions"`
}

// Question is a single rateable look-for
type Question struct {
	Key                 QuestionID   `json:"id" bson:"id"`
	Text                string       `json:"text" bson:"text" validate:"required,max=500"`
	Type                QuestionType `json:"type" bson:"type"`
	Required            bool         `json:"required" bson:"required"`
	Scale               int          `json:"scale,omitempty" bson:"scale,omitempty"` // rating only, typically 4
	Weight              int          `json:"weight" bson:"weight" validate:"min=0,max=100"`
	Tags                []string     `json:"tags" bson:"tags"`
	HelpText            string       `json:"helpText" bson:"helpText"`
	Options             []string     `json:"options,omitempty" bson:"options,omitempty"` // select types only
	FrameworkAlignments []string     `json:"frameworkAlignments" bson:"frameworkAlignments"`
}

// QuestionID identifies a question within a framework. Observation responses
// key on it; there is no referential integrity with the framework, so a
// response may outlive the question it referenced.
type QuestionID string

// MoveDirection is the direction a question is moved within its section
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// FrameworkUpdate carries a partial framework edit; nil fields are left as-is
type FrameworkUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Version     *string          `json:"version,omitempty"`
	Status      *FrameworkStatus `json:"status,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	Sections    *[]Section       `json:"sections,omitempty"`
}

// Section returns the section with the given id, or nil
func (f *Framework) Section(sectionID string) *Section {
	for i := range f.Sections {
		if f.Sections[i].ID == sectionID {
			return &f.Sections[i]
		}
	}
	return nil
}

// AllQuestions returns every question across sections, in section order
func (f *Framework) AllQuestions() []Question {
	var qs []Question
	for _, s := range f.Sections {
		qs = append(qs, s.Questions...)
	}
	return qs
}

// FrameworkAlignment is a descriptive label linking a question to an external
// pedagogical taxonomy. Not a stored entity.
type FrameworkAlignment struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

// AlignmentOptions are the taxonomy labels offered by the framework editor
func AlignmentOptions() []FrameworkAlignment {
	return []FrameworkAlignment{
		{ID: "crp-general", Label: "CRP (General)", Category: "Culturally Responsive", Color: "green"},
		{ID: "crp-curriculum", Label: "CRP (Curriculum Relevance)", Category: "Culturally Responsive", Color: "green"},
		{ID: "crp-high-expectations", Label: "CRP (High Expectations)", Category: "Culturally Responsive", Color: "green"},
		{ID: "crp-learning-partnerships", Label: "CRP (Learning Partnerships)", Category: "Culturally Responsive", Color: "green"},
		{ID: "casel-social-awareness", Label: "CASEL (Social Awareness)", Category: "Social-Emotional", Color: "pink"},
		{ID: "casel-relationship-skills", Label: "CASEL (Relationship Skills)", Category: "Social-Emotional", Color: "pink"},
		{ID: "casel-self-management", Label: "CASEL (Self-Management)", Category: "Social-Emotional", Color: "pink"},
		{ID: "casel-equity-access", Label: "CASEL (Equity & Access)", Category: "Social-Emotional", Color: "pink"},
		{ID: "tripod-care", Label: "Tripod: Care", Category: "7Cs of Learning", Color: "blue"},
		{ID: "tripod-clarify", Label: "Tripod: Clarify", Category: "7Cs of Learning", Color: "blue"},
		{ID: "tripod-challenge", Label: "Tripod: Challenge", Category: "7Cs of Learning", Color: "blue"},
		{ID: "tripod-captivate", Label: "Tripod: Captivate", Category: "7Cs of Learning", Color: "blue"},
		{ID: "tripod-confer", Label: "Tripod: Confer", Category: "7Cs of Learning", Color: "blue"},
		{ID: "tripod-consolidate", Label: "Tripod: Consolidate", Category: "7Cs of Learning", Color: "blue"},
		{ID: "tripod-control", Label: "Tripod: Control", Category: "7Cs of Learning", Color: "blue"},
		{ID: "5-daily-assessment", Label: "5 Daily Assessment Practices", Category: "Assessment", Color: "yellow"},
		{ID: "panorama", Label: "Panorama (Student Experience)", Category: "Student Experience", Color: "purple"},
		{ID: "inclusive-practices", Label: "Inclusive Practices", Category: "Inclusion & Equity", Color: "indigo"},
	}
}
