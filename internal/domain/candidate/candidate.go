package candidate

import (
	"time"

	"talenttrack/internal/domain/pipeline"
)

type Candidate struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Detail is the single-candidate view including pipeline membership.
type Detail struct {
	Candidate
	Positions []pipeline.CandidateStage `json:"positions"`
}

// ListItem is one row of the paginated candidate listing.
type ListItem struct {
	ID        int64                     `json:"id"`
	FullName  string                    `json:"full_name"`
	Email     string                    `json:"email"`
	Positions []pipeline.CandidateStage `json:"positions"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

type ListFilter struct {
	Offset     int
	Limit      int
	Search     string
	Stage      string
	PositionID int64
	SortBy     string
	SortOrder  string
}

type Page struct {
	Items  []ListItem `json:"items"`
	Total  int64      `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
}
