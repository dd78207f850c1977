package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/services"
)

func passengerForm(r *http.Request) services.PassengerInput {
	return services.PassengerInput{
		Name:    r.PostFormValue("name"),
		Age:     r.PostFormValue("age"),
		Sex:     r.PostFormValue("sex"),
		Address: r.PostFormValue("address"),
		Contact: r.PostFormValue("contact"),
		Email:   r.PostFormValue("email"),
	}
}

func (h *Handler) listPassengers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	list, err := h.passengers.List(r.Context(), search)
	var notes []Flash
	if err != nil {
		notes = append(notes, Flash{Category: FlashDanger, Message: h.describe(r, "Passenger", err)})
	}

	h.render(w, r, http.StatusOK, "passengers.html", view{Flashes: notes, Search: search, Passengers: list})
}

func (h *Handler) addPassenger(w http.ResponseWriter, r *http.Request) {
	if _, err := h.passengers.Create(r.Context(), passengerForm(r)); err != nil {
		h.failure(w, r, "Passenger", err)
	} else {
		h.flash(w, r, FlashSuccess, "Passenger added successfully!")
	}
	redirect(w, r, "/passengers")
}

func pidParam(r *http.Request) (int64, bool) {
	pid, err := strconv.ParseInt(chi.URLParam(r, "pid"), 10, 64)
	return pid, err == nil
}

func (h *Handler) editPassengerPage(w http.ResponseWriter, r *http.Request) {
	pid, ok := pidParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	p, err := h.passengers.Get(r.Context(), pid)
	if errors.Is(err, common.ErrorNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.failure(w, r, "Passenger", err)
		redirect(w, r, "/passengers")
		return
	}

	h.render(w, r, http.StatusOK, "edit_passenger.html", view{Passenger: p})
}

func (h *Handler) editPassenger(w http.ResponseWriter, r *http.Request) {
	pid, ok := pidParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	_, err := h.passengers.Update(r.Context(), pid, passengerForm(r))
	switch {
	case err == nil:
		h.flash(w, r, FlashSuccess, "Passenger updated successfully!")
		redirect(w, r, "/passengers")
	case errors.Is(err, common.ErrorNotFound):
		h.notFound(w, r)
	default:
		h.render(w, r, http.StatusUnprocessableEntity, "edit_passenger.html", view{
			Flashes:   []Flash{{Category: FlashDanger, Message: h.describe(r, "Passenger", err)}},
			Passenger: &models.Passenger{PID: pid},
			Form:      r.PostForm,
		})
	}
}

func (h *Handler) deletePassenger(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.ParseInt(r.PostFormValue("pid"), 10, 64)
	if err != nil {
		h.flash(w, r, FlashDanger, "Passenger not found.")
		redirect(w, r, "/passengers")
		return
	}

	if err := h.passengers.Delete(r.Context(), pid); err != nil {
		h.failure(w, r, "Passenger", err)
	} else {
		h.flash(w, r, FlashInfo, "Passenger deleted successfully!")
	}
	redirect(w, r, "/passengers")
}
