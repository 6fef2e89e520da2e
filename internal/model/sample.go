package model

import (
	"time"

	"github.com/google/uuid"
)

type sampleRecord struct {
	name, phone, email string
	tags               []string
	bookings           []Booking
}

var sampleRecords = []sampleRecord{
	{"Alex Yeoh", "87438807", "alexyeoh@example.com", []string{"friends"}, []Booking{{
		ID:          uuid.MustParse("4f5d0c6e-8a53-4d0a-9a1e-1c2b3d4e5f60"),
		Description: "Annual review",
		Start:       time.Date(2026, time.November, 2, 9, 0, 0, 0, time.UTC),
		End:         time.Date(2026, time.November, 2, 10, 0, 0, 0, time.UTC),
	}}},
	{"Bernice Yu", "99272758", "berniceyu@example.com", []string{"colleagues", "friends"}, nil},
	{"Charlotte Oliveiro", "93210283", "charlotte@example.com", []string{"neighbours"}, nil},
	{"David Li", "91031282", "lidavid@example.com", []string{"family"}, nil},
	{"Irfan Ibrahim", "92492021", "irfan@example.com", []string{"classmates"}, nil},
	{"Roy Balakrishnan", "92624417", "royb@example.com", []string{"colleagues"}, nil},
}

// SamplePersons returns the persons a fresh address book starts with when no
// database is configured.
func SamplePersons() []Person {
	persons := make([]Person, 0, len(sampleRecords))
	for _, r := range sampleRecords {
		var tags []Tag
		for _, t := range r.tags {
			tags = append(tags, Tag{name: t})
		}
		persons = append(persons, Person{
			Name:     Name{value: r.name},
			Phone:    Phone{value: r.phone},
			Email:    Email{value: r.email},
			Tags:     NewTagSet(tags...),
			Bookings: r.bookings,
		})
	}
	return persons
}
