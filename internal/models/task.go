// Package models defines the data model shared by the DayKeeper storage and
// application layers.
package models

import (
	"encoding/json"
	"time"
)

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Category of a task.
type Category string

const (
	CategoryWork     Category = "WORK"
	CategoryPersonal Category = "PERSONAL"
	CategoryShopping Category = "SHOPPING"
	CategoryHealth   Category = "HEALTH"
	CategoryOther    Category = "OTHER"
)

// SubTask is an item of a task checklist. Subtasks have no independent
// lifecycle: they are created, mutated and destroyed only as part of the
// owning task's full-record rewrite.
type SubTask struct {
	// Id is unique within the owning task.
	Id string `json:"id"`

	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Task is a single calendar task.
type Task struct {
	// Id is a globally unique identifier, generated client-side, never reused.
	Id string

	// Title is non-empty display text.
	Title string

	// Description is optional free text.
	Description string

	// Date is the due date. Only the calendar day matters to consumers, but
	// the full timestamp round-trips through storage unchanged.
	Date time.Time

	IsCompleted bool

	Priority Priority
	Category Category

	// Subtasks is an ordered checklist, persisted as a single encoded blob
	// column. Order is preserved across save/load round-trips.
	Subtasks []SubTask
}

// EncodeSubtasks serializes an ordered subtask sequence into the text blob
// stored in the subtasks column. Decoding the result with DecodeSubtasks
// yields a sequence equal in order and content.
func EncodeSubtasks(subtasks []SubTask) (string, error) {
	if subtasks == nil {
		subtasks = []SubTask{}
	}
	b, err := json.Marshal(subtasks)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeSubtasks parses the subtasks blob column. An empty blob decodes to an
// empty sequence.
func DecodeSubtasks(blob string) ([]SubTask, error) {
	if blob == "" {
		return []SubTask{}, nil
	}
	var subtasks []SubTask
	if err := json.Unmarshal([]byte(blob), &subtasks); err != nil {
		return nil, err
	}
	if subtasks == nil {
		subtasks = []SubTask{}
	}
	return subtasks, nil
}
