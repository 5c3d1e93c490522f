package model

import (
	"strconv"
	"time"
)

// ObservationStatus is the lifecycle status of an observation record
type ObservationStatus string

const (
	ObservationDraft      ObservationStatus = "draft"
	ObservationInProgress ObservationStatus = "in-progress"
	ObservationCompleted  ObservationStatus = "completed"
	ObservationSubmitted  ObservationStatus = "submitted"
)

// NotObservedSentinel is the raw response value an observer records when a
// look-for could not be observed. Such responses carry no numeric value.
const NotObservedSentinel = "not-observed"

// ClassInfo is a denormalized snapshot of the class at observation time,
// not a live reference to the teacher's current assignment.
type ClassInfo struct {
	Name    string `json:"name" bson:"name"`
	Subject string `json:"subject" bson:"subject"`
	Room    string `json:"room" bson:"room"`
	Period  string `json:"period" bson:"period"`
	Grade   string `json:"grade" bson:"grade"`
}

// ResponseValue holds one response's payload. Exactly one variant is set:
// a rating, free text, one or more selected options, or the not-observed flag.
type ResponseValue struct {
	Rating      int      `json:"rating,omitempty" bson:"rating,omitempty"`
	Text        string   `json:"text,omitempty" bson:"text,omitempty"`
	Selected    []string `json:"selected,omitempty" bson:"selected,omitempty"`
	NotObserved bool     `json:"notObserved,omitempty" bson:"notObserved,omitempty"`
}

// Numeric returns the response's numeric value. Not-observed responses and
// values that do not parse as numbers report ok=false.
func (v ResponseValue) Numeric() (float64, bool) {
	if v.NotObserved || v.Text == NotObservedSentinel {
		return 0, false
	}
	if v.Rating > 0 {
		return float64(v.Rating), true
	}
	if v.Text != "" {
		n, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// ObservationResponse is one observer rating of one question. Immutable once
// written except by an explicit re-save of the observation.
type ObservationResponse struct {
	QuestionID QuestionID    `json:"questionId" bson:"questionId"`
	Value      ResponseValue `json:"value" bson:"value"`
	Timestamp  time.Time     `json:"timestamp" bson:"timestamp"`
}

// Observation is one observer's record of one classroom visit against one
// framework. FrameworkID is a weak reference; responses may reference
// questions that were edited out of the framework after the visit.
type Observation struct {
	ID              string                             `json:"id" bson:"_id,omitempty"`
	TeacherID       string                             `json:"teacherId" bson:"teacherId" validate:"required"`
	TeacherName     string                             `json:"teacherName" bson:"teacherName"`
	ObserverID      string                             `json:"observerId" bson:"observerId" validate:"required"`
	ObserverName    string                             `json:"observerName" bson:"observerName"`
	FrameworkID     string                             `json:"frameworkId" bson:"frameworkId" validate:"required"`
	Date            time.Time                          `json:"date" bson:"date"`
	StartTime       string                             `json:"startTime" bson:"startTime"`
	EndTime         string                             `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Duration        int                                `json:"duration" bson:"duration"` // minutes
	Status          ObservationStatus                  `json:"status" bson:"status"`
	Responses       map[QuestionID]ObservationResponse `json:"responses" bson:"responses"`
	Comments        map[QuestionID]string              `json:"comments" bson:"comments"`
	OverallComment  string                             `json:"overallComment" bson:"overallComment"`
	ClassInfo       ClassInfo                          `json:"classInfo" bson:"classInfo"`
	CRPEvidenceRate *int                               `json:"crpEvidenceCount,omitempty" bson:"crpEvidenceCount,omitempty"`
	TotalLookFors   int                                `json:"totalLookFors" bson:"totalLookFors"`
	CreatedAt       time.Time                          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time                          `json:"updatedAt" bson:"updatedAt"`
}

// ObservationUpdate carries a partial edit; nil fields are left as-is
type ObservationUpdate struct {
	EndTime        *string                             `json:"endTime,omitempty"`
	Duration       *int                                `json:"duration,omitempty"`
	Status         *ObservationStatus                  `json:"status,omitempty"`
	Responses      *map[QuestionID]ObservationResponse `json:"responses,omitempty"`
	Comments       *map[QuestionID]string              `json:"comments,omitempty"`
	OverallComment *string                             `json:"overallComment,omitempty"`
}

// statusRank orders the forward lifecycle. The store does not enforce
// forward-only transitions; this exists for advisory checks only.
var statusRank = map[ObservationStatus]int{
	ObservationDraft:      0,
	ObservationInProgress: 1,
	ObservationCompleted:  2,
	ObservationSubmitted:  3,
}

// IsForwardTransition reports whether moving from to next follows the
// draft -> in-progress -> completed -> submitted ordering.
func IsForwardTransition(from, to ObservationStatus) bool {
	a, okA := statusRank[from]
	b, okB := statusRank[to]
	return okA && okB && b >= a
}
