package model

import "time"

// EventStatus is the lifecycle state of a calendar event.
type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventCompleted EventStatus = "completed"
	EventCanceled  EventStatus = "canceled"
)

// EventImportance ranks calendar events.
type EventImportance string

const (
	ImportanceLow      EventImportance = "low"
	ImportanceMedium   EventImportance = "medium"
	ImportanceHigh     EventImportance = "high"
	ImportanceCritical EventImportance = "critical"
)

// CalendarEvent is an agenda item with an optional reminder window.
type CalendarEvent struct {
	ID                    int
	Title                 string
	CreatorName           string
	StartsAt              time.Time
	EndsAt                *time.Time
	Status                EventStatus
	Importance            EventImportance
	Color                 string
	ReminderMinutesBefore int
	Location              string
	AllDay                bool
	Description           string
}
