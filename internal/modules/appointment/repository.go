package appointment

import "context"

// Repository defines data access for appointments.
type Repository interface {
	CreateAppointment(ctx context.Context, a *Appointment) error

	// ListAppointments returns appointments ordered by date ascending.
	ListAppointments(ctx context.Context) ([]*Appointment, error)

	DeleteAppointment(ctx context.Context, id string) error
}
