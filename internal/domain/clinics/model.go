package clinics

import "time"

// Clinic es una clínica veterinaria habilitada.
type Clinic struct {
	ID string

	Name          string
	LicenseNumber string
	Address       string
	Phone         string
	Email         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
