package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a scheduled store visit.
type Appointment struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"` // wall-clock slot, e.g. "14:00"
	Purpose      string    `json:"purpose,omitempty"`
	StaffID      string    `json:"staff_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateAppointmentRequest is the payload for booking an appointment.
type CreateAppointmentRequest struct {
	CustomerName string    `json:"customer_name"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Purpose      string    `json:"purpose,omitempty"`
	StaffID      string    `json:"staff_id,omitempty"`
}
