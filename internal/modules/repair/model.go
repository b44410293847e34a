package repair

import (
	"time"

	"github.com/google/uuid"
)

// RepairStatus tracks a device through the workshop.
type RepairStatus string

const (
	StatusReceived   RepairStatus = "Received"
	StatusDiagnosing RepairStatus = "Diagnosing"
	StatusInRepair   RepairStatus = "In Repair"
	StatusCompleted  RepairStatus = "Completed"
	StatusDelivered  RepairStatus = "Delivered"
)

// ActiveStatuses are the states counted as in-progress on the dashboard.
var ActiveStatuses = []RepairStatus{StatusReceived, StatusDiagnosing, StatusInRepair}

// Repair is a device repair ticket. CustomerID is a weak reference:
// lookup only, no cascade on customer delete.
type Repair struct {
	ID               uuid.UUID    `json:"id"`
	DeviceName       string       `json:"device_name"`
	SerialNumber     string       `json:"serial_number,omitempty"`
	IMEI             string       `json:"imei,omitempty"`
	IssueDescription string       `json:"issue_description,omitempty"`
	Status           RepairStatus `json:"status"`
	TechnicianNotes  string       `json:"technician_notes,omitempty"`
	TechnicianID     string       `json:"technician_id,omitempty"`
	Amount           int64        `json:"amount"` // cents
	CustomerID       *uuid.UUID   `json:"customer_id,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// CreateRepairRequest is the payload for opening a repair ticket.
type CreateRepairRequest struct {
	DeviceName       string `json:"device_name"`
	SerialNumber     string `json:"serial_number,omitempty"`
	IMEI             string `json:"imei,omitempty"`
	IssueDescription string `json:"issue_description,omitempty"`
	Status           string `json:"status,omitempty"`
	TechnicianNotes  string `json:"technician_notes,omitempty"`
	TechnicianID     string `json:"technician_id,omitempty"`
	Amount           int64  `json:"amount,omitempty"`
	CustomerID       string `json:"customer_id,omitempty"`
}

// UpdateRepairRequest carries a partial update; nil fields are untouched.
// The handler checks each field present in the request body against the
// caller's field-level write scope before this is applied.
type UpdateRepairRequest struct {
	DeviceName       *string `json:"device_name,omitempty"`
	SerialNumber     *string `json:"serial_number,omitempty"`
	IMEI             *string `json:"imei,omitempty"`
	IssueDescription *string `json:"issue_description,omitempty"`
	Status           *string `json:"status,omitempty"`
	TechnicianNotes  *string `json:"technician_notes,omitempty"`
	TechnicianID     *string `json:"technician_id,omitempty"`
	Amount           *int64  `json:"amount,omitempty"`
	CustomerID       *string `json:"customer_id,omitempty"`
}
