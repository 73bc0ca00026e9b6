package position

import (
	"time"

	"talenttrack/internal/domain/pipeline"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusOnHold Status = "on_hold"
	StatusClosed Status = "closed"
)

// ValidStatus reports whether raw is one of the known position statuses.
func ValidStatus(raw Status) bool {
	switch raw {
	case StatusOpen, StatusOnHold, StatusClosed:
		return true
	default:
		return false
	}
}

type Position struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Requirements    *string   `json:"requirements,omitempty"`
	Status          Status    `json:"status"`
	TeamID          int64     `json:"team_id"`
	HiringManagerID int64     `json:"hiring_manager_id"`
	IsArchived      bool      `json:"is_archived"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Detail is the single-position view with resolved names and pipeline entries.
type Detail struct {
	Position
	TeamName          string                       `json:"team_name"`
	HiringManagerName string                       `json:"hiring_manager_name"`
	Candidates        []pipeline.PositionCandidate `json:"candidates"`
}

type ListItem struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	TeamName          string `json:"team_name"`
	HiringManagerName string `json:"hiring_manager_name"`
	Status            Status `json:"status"`
	CandidateCount    int64  `json:"candidate_count"`
}

type ListFilter struct {
	Offset int
	Limit  int
	Status string
	TeamID int64
}

type Page struct {
	Items  []ListItem `json:"items"`
	Total  int64      `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
}

// Update carries partial changes; nil fields are left untouched.
type Update struct {
	Title           *string
	Requirements    *string
	TeamID          *int64
	HiringManagerID *int64
	Status          *string
}
