package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking is an appointment held by a person. Edits never touch bookings, they
// are carried over to the edited person as they are.
type Booking struct {
	ID          uuid.UUID
	Description string
	Start       time.Time
	End         time.Time
}
