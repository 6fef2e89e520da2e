package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/dirk.krummacker/addressbook/internal/command"
	"gitlab.com/dirk.krummacker/addressbook/internal/config"
	"gitlab.com/dirk.krummacker/addressbook/internal/model"
	"gitlab.com/dirk.krummacker/addressbook/internal/store"
	api "gitlab.com/dirk.krummacker/addressbook/pkg/model"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// createMockObjects builds a mock database handle and a mock object for defining our expected SQL
// calls.
func createMockObjects(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	return db, mock
}

// newSampleService returns an in-memory service holding the sample persons.
func newSampleService(t *testing.T) *Service {
	t.Helper()
	book, err := model.NewAddressBook(model.SamplePersons()...)
	require.NoError(t, err)
	return New(book, nil, discard)
}

// runTest executes the HTTP request with the specified arguments and returns the response.
func runTest(svc *Service, method string, url string, body *strings.Reader) *httptest.ResponseRecorder {
	gin.SetMode(gin.ReleaseMode)
	router := SetupHttpRouter(svc, false)
	recorder := httptest.NewRecorder()
	if body == nil {
		body = strings.NewReader("")
	}
	request, _ := http.NewRequest(method, url, body)
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

// TestGetPersons executes a GET request for all persons. It expects the sample persons as JSON.
func TestGetPersons(t *testing.T) {
	recorder := runTest(newSampleService(t), "GET", "/persons", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var persons []api.Person
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &persons))
	require.Len(t, persons, len(model.SamplePersons()))
	assert.Equal(t, "Alex Yeoh", persons[0].Name)
	assert.Equal(t, "87438807", persons[0].Phone)
	assert.Equal(t, "alexyeoh@example.com", persons[0].Email)
	assert.Equal(t, []string{"friends"}, persons[0].Tags)
	require.Len(t, persons[0].Bookings, 1)
	assert.Equal(t, "Annual review", persons[0].Bookings[0].Description)
	assert.Equal(t, []string{"colleagues", "friends"}, persons[1].Tags)
}

// TestPostEditCommand executes an edit command. It expects the feedback and the edited person to
// show up in a subsequent GET.
func TestPostEditCommand(t *testing.T) {
	svc := newSampleService(t)

	recorder := runTest(svc, "POST", "/commands", strings.NewReader(`
		{"command": "edit n/Alex Yeoh n/Alex Tan p/91234567 t/"}
	`))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var body api.CommandResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Edited Person: Alex Tan; Phone: 91234567; Email: alexyeoh@example.com; Tags: ", body.Message)
	assert.Empty(t, body.Kind)

	recorder = runTest(svc, "GET", "/persons", nil)
	var persons []api.Person
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &persons))
	assert.Equal(t, "Alex Tan", persons[0].Name)
	assert.Empty(t, persons[0].Tags)
	assert.Len(t, persons[0].Bookings, 1)
}

// TestPostCommandFailures executes failing commands. It expects each failure kind to be mapped to
// its status code.
func TestPostCommandFailures(t *testing.T) {
	tests := []struct {
		body    string
		status  int
		kind    string
		message string
	}{
		{`{"command": "edit n/Nobody p/91234567"}`, http.StatusNotFound, "not_found",
			"Person with name 'Nobody' not found in the address book."},
		{`{"command": "edit n/Alex Yeoh n/Bernice Yu"}`, http.StatusConflict, "duplicate_person",
			command.MessageDuplicatePerson},
		{`{"command": "edit n/Alex Yeoh"}`, http.StatusBadRequest, "not_edited", command.MessageNotEdited},
		{`{"command": "edit n/Alex Yeoh p/12"}`, http.StatusBadRequest, "constraint", model.PhoneConstraints},
		{`{"command": "edit n/Alex Yeoh p/123 p/456"}`, http.StatusBadRequest, "duplicate_prefix",
			"Multiple values specified for the following single-valued field(s): p/"},
		{`{"command": "edit p/123"}`, http.StatusBadRequest, "invalid_format",
			"Invalid command format! \n" + command.EditUsage.String()},
		{`{"command": "delete 1"}`, http.StatusBadRequest, "unknown_command", "Unknown command"},
		{`not JSON`, http.StatusBadRequest, "invalid_request", "invalid JSON"},
		{`{}`, http.StatusBadRequest, "invalid_request", "invalid JSON"},
	}
	for _, tt := range tests {
		recorder := runTest(newSampleService(t), "POST", "/commands", strings.NewReader(tt.body))
		assert.Equal(t, tt.status, recorder.Code, tt.body)
		var body api.CommandResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body), tt.body)
		assert.Equal(t, tt.kind, body.Kind, tt.body)
		assert.Equal(t, tt.message, body.Message, tt.body)
	}
}

// expectReplace instructs the mock object to expect a replacement of a person's phone.
func expectReplace(mock sqlmock.Sqlmock, name, phone, email string) {
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM persons WHERE name = ?")).
		WithArgs(name).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE persons SET name = ?, phone = ?, email = ? WHERE id = ?")).
		WithArgs(name, phone, email, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

// TestExecuteWritesToStore expects an edit to be written to the database and then to the book.
func TestExecuteWritesToStore(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	book, err := model.NewAddressBook(model.SamplePersons()...)
	require.NoError(t, err)
	svc := New(book, store.New(db), discard)

	expectReplace(mock, "Alex Yeoh", "91234567", "alexyeoh@example.com")

	result, err := svc.Execute(context.Background(), "edit n/Alex Yeoh p/91234567")
	require.NoError(t, err)
	assert.Contains(t, result.Feedback, "Phone: 91234567")
	assert.Equal(t, "91234567", svc.Persons()[0].Phone.String())
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestExecuteStoreFailure expects a failed database write to leave the book unchanged.
func TestExecuteStoreFailure(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	book, err := model.NewAddressBook(model.SamplePersons()...)
	require.NoError(t, err)
	svc := New(book, store.New(db), discard)

	boom := errors.New("connection reset")
	mock.ExpectBegin().WillReturnError(boom)

	_, err = svc.Execute(context.Background(), "edit n/Alex Yeoh p/91234567")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "87438807", svc.Persons()[0].Phone.String())

	recorder := runTest(svc, "POST", "/commands", strings.NewReader(`{"command": "edit n/Alex Yeoh p/91234567"}`))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

// TestFromStore expects the book to be loaded from the database.
func TestFromStore(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, phone, email FROM persons")).
		WillReturnRows(mock.NewRows([]string{"id", "name", "phone", "email"}).
			AddRow(1, "Erika Mustermann", "4908154711", "erika@example.com"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT person_id, tag FROM person_tags")).
		WillReturnRows(mock.NewRows([]string{"person_id", "tag"}).AddRow(1, "family"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, person_id, description, start_time, end_time FROM bookings")).
		WillReturnRows(mock.NewRows([]string{"id", "person_id", "description", "start_time", "end_time"}))

	svc, err := FromStore(context.Background(), store.New(db), discard)
	require.NoError(t, err)
	persons := svc.Persons()
	require.Len(t, persons, 1)
	assert.Equal(t, "Erika Mustermann", persons[0].Name.String())
	assert.Equal(t, []string{"family"}, persons[0].Tags.Names())
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

// TestFromStoreDuplicateRows expects duplicated names in the database to be rejected.
func TestFromStoreDuplicateRows(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, phone, email FROM persons")).
		WillReturnRows(mock.NewRows([]string{"id", "name", "phone", "email"}).
			AddRow(1, "Erika Mustermann", "4908154711", "erika@example.com").
			AddRow(2, "Erika Mustermann", "4908154712", "erika2@example.com"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT person_id, tag FROM person_tags")).
		WillReturnRows(mock.NewRows([]string{"person_id", "tag"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, person_id, description, start_time, end_time FROM bookings")).
		WillReturnRows(mock.NewRows([]string{"id", "person_id", "description", "start_time", "end_time"}))

	_, err := FromStore(context.Background(), store.New(db), discard)
	assert.ErrorIs(t, err, model.ErrDuplicatePerson)
}

// TestBootstrapWithoutDatabase expects the sample data when no database is configured.
func TestBootstrapWithoutDatabase(t *testing.T) {
	svc, release, err := Bootstrap(context.Background(), config.Config{}, discard)
	require.NoError(t, err)
	defer release()
	assert.Len(t, svc.Persons(), len(model.SamplePersons()))
}
