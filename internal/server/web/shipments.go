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

// shipmentForm reads the shipment fields. A checkbox is submitted only when
// ticked, so presence alone marks the shipment insured.
func shipmentForm(r *http.Request) services.ShipmentInput {
	in := services.ShipmentInput{
		Contents:    r.PostFormValue("contents"),
		WeightKg:    r.PostFormValue("weight_kg"),
		Category:    r.PostFormValue("category"),
		FlightNo:    r.PostFormValue("flight_no"),
		CostPerKg:   r.PostFormValue("cost_per_kg"),
		HandlingFee: r.PostFormValue("handling_fee"),
	}
	// PostFormValue has parsed the body by now
	_, in.IsInsured = r.PostForm["is_insured"]

	return in
}

// flightChoices lists flights for the selector; a failure only empties it.
func (h *Handler) flightChoices(r *http.Request) []models.Flight {
	list, err := h.flights.List(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "listing flights failed", "error", err)
		return nil
	}
	return list
}

func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request) {
	list, err := h.shipments.List(r.Context())
	var notes []Flash
	if err != nil {
		notes = append(notes, Flash{Category: FlashDanger, Message: h.describe(r, "Shipment", err)})
	}

	h.render(w, r, http.StatusOK, "shipments.html", view{Flashes: notes, Shipments: list, Flights: h.flightChoices(r)})
}

func (h *Handler) addShipment(w http.ResponseWriter, r *http.Request) {
	if _, err := h.shipments.Create(r.Context(), shipmentForm(r)); err != nil {
		h.failure(w, r, "Shipment", err)
	} else {
		h.flash(w, r, FlashSuccess, "Shipment added successfully!")
	}
	redirect(w, r, "/shipments")
}

func shipmentID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *Handler) editShipmentPage(w http.ResponseWriter, r *http.Request) {
	id, ok := shipmentID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	s, err := h.shipments.Get(r.Context(), id)
	if errors.Is(err, common.ErrorNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.failure(w, r, "Shipment", err)
		redirect(w, r, "/shipments")
		return
	}

	h.render(w, r, http.StatusOK, "edit_shipment.html", view{Shipment: s, Flights: h.flightChoices(r)})
}

func (h *Handler) editShipment(w http.ResponseWriter, r *http.Request) {
	id, ok := shipmentID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	_, err := h.shipments.Update(r.Context(), id, shipmentForm(r))
	switch {
	case err == nil:
		h.flash(w, r, FlashSuccess, "Shipment updated successfully!")
		redirect(w, r, "/shipments")
	case errors.Is(err, common.ErrorNotFound):
		h.notFound(w, r)
	default:
		h.render(w, r, http.StatusUnprocessableEntity, "edit_shipment.html", view{
			Flashes:  []Flash{{Category: FlashDanger, Message: h.describe(r, "Shipment", err)}},
			Shipment: &models.Shipment{ID: id},
			Flights:  h.flightChoices(r),
			Form:     r.PostForm,
		})
	}
}

func (h *Handler) deleteShipment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	if err != nil {
		h.flash(w, r, FlashDanger, "Shipment not found.")
		redirect(w, r, "/shipments")
		return
	}

	if err := h.shipments.Delete(r.Context(), id); err != nil {
		h.failure(w, r, "Shipment", err)
	} else {
		h.flash(w, r, FlashInfo, "Shipment deleted successfully!")
	}
	redirect(w, r, "/shipments")
}
