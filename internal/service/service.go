// Package service runs address book commands, one at a time, and exposes them
// over a REST API.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gitlab.com/dirk.krummacker/addressbook/internal/command"
	"gitlab.com/dirk.krummacker/addressbook/internal/config"
	"gitlab.com/dirk.krummacker/addressbook/internal/model"
	"gitlab.com/dirk.krummacker/addressbook/internal/parser"
	"gitlab.com/dirk.krummacker/addressbook/internal/store"
)

// Store persists changes made by commands.
type Store interface {
	ReplacePerson(ctx context.Context, target, edited model.Person) error
}

// Service owns the address book. Commands are executed one at a time, each
// runs to completion before the next is accepted.
type Service struct {
	mu     sync.Mutex
	book   *model.AddressBook
	parser *parser.AddressBookParser
	store  Store
	log    *slog.Logger
}

// New returns a service for book. A nil store keeps all changes in memory.
func New(book *model.AddressBook, st Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		book:   book,
		parser: parser.NewAddressBookParser(),
		store:  st,
		log:    log,
	}
}

// Execute parses input and runs the resulting command.
func (s *Service) Execute(ctx context.Context, input string) (command.Result, error) {
	word := parser.CommandWord(input)
	cmd, err := s.parser.ParseCommand(input)
	if err != nil {
		s.log.InfoContext(ctx, "command rejected", "command", word, "error", err.Error())
		return command.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var m command.Model = s.book
	if s.store != nil {
		m = &storedModel{AddressBook: s.book, ctx: ctx, store: s.store}
	}
	result, err := cmd.Execute(m)
	if err != nil {
		var cmdErr *command.Error
		if errors.As(err, &cmdErr) {
			s.log.InfoContext(ctx, "command failed", "command", word, "error", err.Error())
		} else {
			s.log.ErrorContext(ctx, "command failed", "command", word, "error", err)
		}
		return command.Result{}, err
	}
	s.log.InfoContext(ctx, "command executed", "command", word)
	return result, nil
}

// Persons returns the persons in the current filtered view.
func (s *Service) Persons() []model.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.FilteredPersons()
}

// storedModel writes every replacement to the store before it touches the
// in-memory book, so a failed write leaves the book unchanged.
type storedModel struct {
	*model.AddressBook
	ctx   context.Context
	store Store
}

func (m *storedModel) SetPerson(target, edited model.Person) error {
	if err := m.store.ReplacePerson(m.ctx, target, edited); err != nil {
		return err
	}
	return m.AddressBook.SetPerson(target, edited)
}

// Bootstrap builds the service described by cfg. With a database configured the
// persons are loaded from it and every change is written back, otherwise the
// book starts with sample data. The returned function releases resources.
func Bootstrap(ctx context.Context, cfg config.Config, log *slog.Logger) (*Service, func(), error) {
	if !cfg.Database.Enabled() {
		book, err := model.NewAddressBook(model.SamplePersons()...)
		if err != nil {
			return nil, nil, err
		}
		log.Info("no database configured, using sample data")
		return New(book, nil, log), func() {}, nil
	}

	sqlDB, err := store.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	st := store.New(sqlDB)
	closeStore := func() {
		if err := st.Close(); err != nil {
			log.Warn("closing database", "error", err)
		}
	}
	svc, err := FromStore(ctx, st, log)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return svc, closeStore, nil
}

// FromStore loads the address book from st and returns a service writing to it.
func FromStore(ctx context.Context, st *store.Store, log *slog.Logger) (*Service, error) {
	if err := st.Ping(ctx); err != nil {
		return nil, err
	}
	persons, err := st.LoadPersons(ctx)
	if err != nil {
		return nil, err
	}
	book, err := model.NewAddressBook(persons...)
	if err != nil {
		return nil, fmt.Errorf("load address book: %w", err)
	}
	log.Info("address book loaded", "persons", len(persons))
	return New(book, st, log), nil
}
