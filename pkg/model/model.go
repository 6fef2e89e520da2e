// Package model holds the JSON types of the REST API.
package model

import "time"

// Person is the JSON form of an address book entry.
type Person struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	Tags     []string  `json:"tags"`
	Bookings []Booking `json:"bookings,omitempty"`
}

// Booking is the JSON form of a person's booking.
type Booking struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// CommandRequest carries one line of command text.
type CommandRequest struct {
	Command string `json:"command" binding:"required"`
}

// CommandResponse is returned for every executed command. Kind is only set
// when the command failed.
type CommandResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}
