package model

import "time"

// ScheduleStatus is the lifecycle of a not-yet-started visit. Scheduled
// observations are a separate record type from observations; the two state
// machines are deliberately not merged.
type ScheduleStatus string

const (
	ScheduleScheduled ScheduleStatus = "scheduled"
	ScheduleConfirmed ScheduleStatus = "confirmed"
	ScheduleCancelled ScheduleStatus = "cancelled"
	ScheduleCompleted ScheduleStatus = "completed"
)

// ScheduledObservation is a planned classroom visit
type ScheduledObservation struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	TeacherID     string         `json:"teacherId" bson:"teacherId" validate:"required"`
	ObserverID    string         `json:"observerId" bson:"observerId" validate:"required"`
	FrameworkID   string         `json:"frameworkId" bson:"frameworkId" validate:"required"`
	ScheduledDate time.Time      `json:"scheduledDate" bson:"scheduledDate"`
	ScheduledTime string         `json:"scheduledTime" bson:"scheduledTime"`
	Duration      int            `json:"duration" bson:"duration"`
	Status        ScheduleStatus `json:"status" bson:"status"`
	Notes         string         `json:"notes,omitempty" bson:"notes,omitempty"`
	RemindersSent bool           `json:"remindersSent" bson:"remindersSent"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}
