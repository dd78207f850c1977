// Package web serves the airline admin HTML interface: login, passengers,
// flights and shipments.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/logging"
)

// Handler holds the page handlers and their dependencies.
type Handler struct {
	users      UserService
	sessions   SessionService
	passengers PassengerService
	flights    FlightService
	shipments  ShipmentService
	db         Pinger

	logger        logging.Logger
	templates     map[string]*template.Template
	secureCookies bool
}

// Deps groups the services a Handler needs.
type Deps struct {
	Users      UserService
	Sessions   SessionService
	Passengers PassengerService
	Flights    FlightService
	Shipments  ShipmentService
	DB         Pinger
}

func NewHandler(d Deps, l logging.Logger, secureCookies bool) (*Handler, error) {
	tpls, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		users:         d.Users,
		sessions:      d.Sessions,
		passengers:    d.Passengers,
		flights:       d.Flights,
		shipments:     d.Shipments,
		db:            d.DB,
		logger:        l.With("module", "web"),
		templates:     tpls,
		secureCookies: secureCookies,
	}, nil
}

// failure queues a notice describing err for the next page view.
func (h *Handler) failure(w http.ResponseWriter, r *http.Request, what string, err error) {
	h.flash(w, r, FlashDanger, h.describe(r, what, err))
}

// describe turns a service error into a notice for the user. Unexpected
// errors are logged and reported generically.
func (h *Handler) describe(r *http.Request, what string, err error) string {
	var msg string

	switch {
	case errors.Is(err, common.ErrorNotFound):
		msg = what + " not found."
	case errors.Is(err, common.ErrDuplicateKey):
		msg = what + " already exists."
	case errors.Is(err, common.ErrInvalidStatus):
		msg = "Invalid flight status."
	case errors.Is(err, common.ErrInvalidNumeric):
		msg = "Please enter valid numbers: " + detail(err, common.ErrInvalidNumeric) + "."
	case errors.Is(err, common.ErrValidation):
		msg = capitalize(detail(err, common.ErrValidation)) + "."
	case errors.Is(err, common.ErrInvalidFlightReference):
		msg = "Flight does not exist."
	case errors.Is(err, common.ErrFlightInUse):
		msg = "Flight has shipments and cannot be deleted."
	default:
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		msg = "Something went wrong. Please try again."
	}

	return msg
}

// detail returns the text following sentinel in err's message.
func detail(err, sentinel error) string {
	s := err.Error()
	if i := strings.Index(s, sentinel.Error()+": "); i >= 0 {
		return s[i+len(sentinel.Error())+2:]
	}
	return sentinel.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
