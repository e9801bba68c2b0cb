package owners

import "time"

// Owner es el responsable de una o más mascotas.
type Owner struct {
	ID string

	Name    string
	Email   string
	Phone   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}
