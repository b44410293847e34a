package customer

import (
	"time"

	"github.com/google/uuid"
)

// Segment buckets customers for outreach.
type Segment string

const (
	SegmentNew    Segment = "New"
	SegmentRepeat Segment = "Repeat"
	SegmentVIP    Segment = "VIP"
)

// Customer is a CRM customer record. Orders and repairs point at it by id
// only; deleting a customer does not cascade.
type Customer struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Segment        Segment    `json:"segment"`
	WarrantyExpiry *time.Time `json:"warranty_expiry,omitempty"`
	ReminderFlag   bool       `json:"reminder_flag"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// UpsertCustomerRequest is the payload for creating or updating a customer.
type UpsertCustomerRequest struct {
	Name           string     `json:"name"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Segment        string     `json:"segment,omitempty"`
	WarrantyExpiry *time.Time `json:"warranty_expiry,omitempty"`
	ReminderFlag   bool       `json:"reminder_flag,omitempty"`
}
