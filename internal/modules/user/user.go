package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff or customer login. Role drives every permission check;
// CustomerID links a Customer-role login to its customer record for
// own-data filtering.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CustomerID   *uuid.UUID `json:"customer_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
