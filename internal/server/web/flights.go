package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/services"
)

func flightForm(r *http.Request) services.FlightInput {
	return services.FlightInput{
		FlightNo: r.PostFormValue("flight_no"),
		From:     r.PostFormValue("from"),
		To:       r.PostFormValue("to"),
		DepDate:  r.PostFormValue("dep_date"),
		DepTime:  r.PostFormValue("dep_time"),
		ArrDate:  r.PostFormValue("arr_date"),
		ArrTime:  r.PostFormValue("arr_time"),
		Status:   r.PostFormValue("status"),
	}
}

func (h *Handler) listFlights(w http.ResponseWriter, r *http.Request) {
	list, err := h.flights.List(r.Context())
	var notes []Flash
	if err != nil {
		notes = append(notes, Flash{Category: FlashDanger, Message: h.describe(r, "Flight", err)})
	}

	h.render(w, r, http.StatusOK, "flights.html", view{Flashes: notes, Flights: list, Statuses: h.flights.Statuses()})
}

func (h *Handler) addFlight(w http.ResponseWriter, r *http.Request) {
	if _, err := h.flights.Create(r.Context(), flightForm(r)); err != nil {
		h.failure(w, r, "Flight", err)
	} else {
		h.flash(w, r, FlashSuccess, "Flight added successfully!")
	}
	redirect(w, r, "/flights")
}

// flightNoParam decodes the flight number from the path. chi leaves the
// value escaped when the request path carried escapes of its own.
func flightNoParam(r *http.Request) (string, bool) {
	v := chi.URLParam(r, "flight_no")
	if r.URL.RawPath == "" {
		return v, true
	}
	s, err := url.PathUnescape(v)
	return s, err == nil
}

func (h *Handler) editFlightPage(w http.ResponseWriter, r *http.Request) {
	no, ok := flightNoParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	f, err := h.flights.Get(r.Context(), no)
	if errors.Is(err, common.ErrorNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.failure(w, r, "Flight", err)
		redirect(w, r, "/flights")
		return
	}

	h.render(w, r, http.StatusOK, "edit_flight.html", view{Flight: f, Statuses: h.flights.Statuses()})
}

// editFlight keeps the flight number from the path; it is the key and
// cannot be changed.
func (h *Handler) editFlight(w http.ResponseWriter, r *http.Request) {
	no, ok := flightNoParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	_, err := h.flights.Update(r.Context(), no, flightForm(r))
	switch {
	case err == nil:
		h.flash(w, r, FlashSuccess, "Flight updated successfully!")
		redirect(w, r, "/flights")
	case errors.Is(err, common.ErrorNotFound):
		h.notFound(w, r)
	default:
		h.render(w, r, http.StatusUnprocessableEntity, "edit_flight.html", view{
			Flashes:  []Flash{{Category: FlashDanger, Message: h.describe(r, "Flight", err)}},
			Flight:   &models.Flight{FlightNo: no},
			Statuses: h.flights.Statuses(),
			Form:     r.PostForm,
		})
	}
}

func (h *Handler) deleteFlight(w http.ResponseWriter, r *http.Request) {
	if err := h.flights.Delete(r.Context(), r.PostFormValue("flight_no")); err != nil {
		h.failure(w, r, "Flight", err)
	} else {
		h.flash(w, r, FlashInfo, "Flight deleted successfully!")
	}
	redirect(w, r, "/flights")
}
