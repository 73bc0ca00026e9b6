package pipeline

import "time"

// Association links one candidate to one position. At most one row may exist
// per (candidate_id, position_id) pair.
type Association struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	PositionID  int64     `json:"position_id"`
	Stage       Stage     `json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CandidateStage is the per-candidate projection of an association.
type CandidateStage struct {
	PositionID    int64  `json:"position_id"`
	PositionTitle string `json:"position_title"`
	Stage         Stage  `json:"stage"`
}

// PositionCandidate is the per-position projection of an association.
type PositionCandidate struct {
	CandidateID    int64  `json:"candidate_id"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	Stage          Stage  `json:"stage"`
}
