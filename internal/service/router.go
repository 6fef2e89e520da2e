package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gitlab.com/dirk.krummacker/addressbook/internal/command"
	"gitlab.com/dirk.krummacker/addressbook/internal/model"
	api "gitlab.com/dirk.krummacker/addressbook/pkg/model"
)

// errorKinds maps failure kinds to the kind string and HTTP status of the response.
var errorKinds = []struct {
	err    error
	kind   string
	status int
}{
	{command.ErrInvalidFormat, "invalid_format", http.StatusBadRequest},
	{command.ErrUnknownCommand, "unknown_command", http.StatusBadRequest},
	{command.ErrNotEdited, "not_edited", http.StatusBadRequest},
	{command.ErrDuplicatePrefix, "duplicate_prefix", http.StatusBadRequest},
	{model.ErrConstraint, "constraint", http.StatusBadRequest},
	{command.ErrPersonNotFound, "not_found", http.StatusNotFound},
	{command.ErrDuplicatePerson, "duplicate_person", http.StatusConflict},
}

// SetupHttpRouter initializes the REST API router and registers all endpoints.
func SetupHttpRouter(svc *Service, logging bool) *gin.Engine {
	var router *gin.Engine
	if logging {
		router = gin.Default()
	} else {
		router = gin.New()
		router.Use(gin.Recovery())
	}
	h := handler{svc: svc}
	router.GET("/persons", h.findPersons)
	router.POST("/commands", h.executeCommand)
	return router
}

type handler struct {
	svc *Service
}

// findPersons responds with the persons of the current filtered view as JSON.
//
// Example REST API call:
//
//	> curl http://localhost:8080/persons
func (h handler) findPersons(c *gin.Context) {
	persons := h.svc.Persons()
	out := make([]api.Person, 0, len(persons))
	for _, p := range persons {
		out = append(out, toAPIPerson(p))
	}
	c.IndentedJSON(http.StatusOK, out)
}

// executeCommand runs the command text of the request body and responds with
// the feedback of the command.
//
// Example REST API call:
//
//	> curl http://localhost:8080/commands --request "POST" --include --header "Content-Type: application/json" --data '{"command": "edit n/Alex Yeoh p/91234567"}'
func (h handler) executeCommand(c *gin.Context) {
	var req api.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.CommandResponse{Message: "invalid JSON", Kind: "invalid_request"})
		return
	}
	result, err := h.svc.Execute(c.Request.Context(), req.Command)
	if err != nil {
		for _, k := range errorKinds {
			if errors.Is(err, k.err) {
				c.AbortWithStatusJSON(k.status, api.CommandResponse{Message: err.Error(), Kind: k.kind})
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.CommandResponse{Message: "internal error", Kind: "internal"})
		return
	}
	c.IndentedJSON(http.StatusOK, api.CommandResponse{Message: result.Feedback})
}

func toAPIPerson(p model.Person) api.Person {
	out := api.Person{
		Name:  p.Name.String(),
		Phone: p.Phone.String(),
		Email: p.Email.String(),
		Tags:  p.Tags.Names(),
	}
	for _, b := range p.Bookings {
		out.Bookings = append(out.Bookings, api.Booking{
			ID:          b.ID.String(),
			Description: b.Description,
			Start:       b.Start,
			End:         b.End,
		})
	}
	return out
}
