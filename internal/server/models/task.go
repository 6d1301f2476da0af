package models

import "time"

// Task belongs to exactly one user; every query against tasks is scoped by
// UserID.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// TaskStats aggregates task counts for one user.
type TaskStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}

// TaskFilter narrows List queries. Search matches title or description
// case-insensitively; Completed filters by status when non-nil.
type TaskFilter struct {
	UserID    string
	Search    string
	Completed *bool
	Page      int
	Limit     int
}
