// Package store keeps the address book in MySQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/dirk.krummacker/addressbook/internal/config"
	"gitlab.com/dirk.krummacker/addressbook/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation.
const mysqlDuplicateEntry = 1062

type personRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Phone string `db:"phone"`
	Email string `db:"email"`
}

type tagRow struct {
	PersonID int64  `db:"person_id"`
	Tag      string `db:"tag"`
}

type bookingRow struct {
	ID          string    `db:"id"`
	PersonID    int64     `db:"person_id"`
	Description string    `db:"description"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
}

// Store reads and writes persons. It is safe for concurrent use.
type Store struct {
	db *sqlx.DB
}

// Open returns a connection pool for the configured database. The connection
// is not verified, use Ping for that.
func Open(cfg config.Database) (*sql.DB, error) {
	sqlDB, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	return sqlDB, nil
}

// New wraps sqlDB. The argument can be a real database for production use or a
// mock database within unit tests.
func New(sqlDB *sql.DB) *Store {
	return &Store{db: sqlx.NewDb(sqlDB, "mysql")}
}

// Ping verifies that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("store: ping: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadPersons reads every person with their tags and bookings, in insertion order.
func (s *Store) LoadPersons(ctx context.Context) ([]model.Person, error) {
	var persons []personRow
	if err := s.db.SelectContext(ctx, &persons, `
		SELECT id, name, phone, email FROM persons ORDER BY id
	`); err != nil {
		return nil, fmt.Errorf("store: select persons: %w", err)
	}
	var tags []tagRow
	if err := s.db.SelectContext(ctx, &tags, `
		SELECT person_id, tag FROM person_tags ORDER BY person_id, tag
	`); err != nil {
		return nil, fmt.Errorf("store: select tags: %w", err)
	}
	var bookings []bookingRow
	if err := s.db.SelectContext(ctx, &bookings, `
		SELECT id, person_id, description, start_time, end_time FROM bookings ORDER BY start_time
	`); err != nil {
		return nil, fmt.Errorf("store: select bookings: %w", err)
	}

	tagsByPerson := map[int64][]model.Tag{}
	for _, r := range tags {
		t, err := model.NewTag(r.Tag)
		if err != nil {
			return nil, fmt.Errorf("store: person %d tag %q: %w", r.PersonID, r.Tag, err)
		}
		tagsByPerson[r.PersonID] = append(tagsByPerson[r.PersonID], t)
	}
	bookingsByPerson := map[int64][]model.Booking{}
	for _, r := range bookings {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("store: booking %q: %w", r.ID, err)
		}
		bookingsByPerson[r.PersonID] = append(bookingsByPerson[r.PersonID], model.Booking{
			ID:          id,
			Description: r.Description,
			Start:       r.StartTime,
			End:         r.EndTime,
		})
	}

	result := make([]model.Person, 0, len(persons))
	for _, r := range persons {
		p, err := toPerson(r)
		if err != nil {
			return nil, err
		}
		p.Tags = model.NewTagSet(tagsByPerson[r.ID]...)
		p.Bookings = bookingsByPerson[r.ID]
		result = append(result, p)
	}
	return result, nil
}

func toPerson(r personRow) (model.Person, error) {
	name, err := model.NewName(r.Name)
	if err != nil {
		return model.Person{}, fmt.Errorf("store: person %d name: %w", r.ID, err)
	}
	phone, err := model.NewPhone(r.Phone)
	if err != nil {
		return model.Person{}, fmt.Errorf("store: person %d phone: %w", r.ID, err)
	}
	email, err := model.NewEmail(r.Email)
	if err != nil {
		return model.Person{}, fmt.Errorf("store: person %d email: %w", r.ID, err)
	}
	return model.Person{Name: name, Phone: phone, Email: email}, nil
}

// ReplacePerson overwrites the stored fields of target with those of edited in
// a single transaction. Bookings are not touched.
func (s *Store) ReplacePerson(ctx context.Context, target, edited model.Person) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var id int64
	err = tx.GetContext(ctx, &id, `SELECT id FROM persons WHERE name = ?`, target.Name.String())
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("store: replace %s: %w", target.Name, model.ErrPersonNotFound)
	}
	if err != nil {
		return fmt.Errorf("store: select person: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE persons SET name = ?, phone = ?, email = ? WHERE id = ?
	`, edited.Name.String(), edited.Phone.String(), edited.Email.String(), id)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return fmt.Errorf("store: replace %s: %w", target.Name, model.ErrDuplicatePerson)
		}
		return fmt.Errorf("store: update person: %w", err)
	}

	if !target.Tags.Equal(edited.Tags) {
		if _, err = tx.ExecContext(ctx, `DELETE FROM person_tags WHERE person_id = ?`, id); err != nil {
			return fmt.Errorf("store: delete tags: %w", err)
		}
		if !edited.Tags.IsEmpty() {
			rows := make([]tagRow, 0, edited.Tags.Len())
			for _, t := range edited.Tags.Names() {
				rows = append(rows, tagRow{PersonID: id, Tag: t})
			}
			_, err = tx.NamedExecContext(ctx, `
				INSERT INTO person_tags (person_id, tag) VALUES (:person_id, :tag)
			`, rows)
			if err != nil {
				return fmt.Errorf("store: insert tags: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}
