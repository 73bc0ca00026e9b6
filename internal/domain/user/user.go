package user

import "time"

type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	ExternalID string    `json:"-"`
	FullName   string    `json:"full_name"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
