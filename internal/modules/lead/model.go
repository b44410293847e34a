package lead

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks a sales lead through its funnel.
type LeadStatus string

const (
	StatusNew       LeadStatus = "New"
	StatusContacted LeadStatus = "Contacted"
	StatusConverted LeadStatus = "Converted"
	StatusLost      LeadStatus = "Lost"
)

// Lead is a prospective customer.
type Lead struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Interest          string     `json:"interest,omitempty"`
	Status            LeadStatus `json:"status"`
	CallbackRequested bool       `json:"callback_requested"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// UpsertLeadRequest is the payload for creating or updating a lead.
type UpsertLeadRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Interest          string `json:"interest,omitempty"`
	Status            string `json:"status,omitempty"`
	CallbackRequested bool   `json:"callback_requested,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// ConvertResult is returned when a lead becomes a customer.
type ConvertResult struct {
	CustomerID string `json:"customer_id"`
}
