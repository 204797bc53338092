package model

import "fmt"

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// ParsePriority validates p. The empty string maps to PriorityNormal.
func ParsePriority(p string) (Priority, error) {
	switch Priority(p) {
	case "":
		return PriorityNormal, nil
	case PriorityLow, PriorityNormal, PriorityHigh:
		return Priority(p), nil
	}
	return "", Invalid("priority", fmt.Sprintf("%q is not one of low, normal, high", p))
}

// Task is a todo item. A zero Deadline means the task has none.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"desc"`
	Deadline    Date     `json:"deadline"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

// IsOverdue reports whether t has a deadline strictly before today and is
// still open. A task due today is not overdue.
func (t Task) IsOverdue(today Date) bool {
	return !t.Deadline.IsZero() && t.Deadline.Before(today) && !t.Completed
}
