package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff member that can be assigned to stores. No access-control
// logic exists on top of it.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
