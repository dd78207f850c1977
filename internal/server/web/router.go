package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router wires every route. Pages other than the index, health and auth
// pages require a logged-in session.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(h.loadSession)

	r.NotFound(h.notFound)

	r.Get("/", h.index)
	r.Get("/healthz", h.healthz)

	r.Get("/login", h.loginPage)
	r.Post("/login", h.login)
	r.Get("/register", h.registerPage)
	r.Post("/register", h.register)
	r.Get("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireLogin)

		r.Get("/passengers", h.listPassengers)
		r.Post("/add_passenger", h.addPassenger)
		r.Get("/edit_passenger/{pid}", h.editPassengerPage)
		r.Post("/edit_passenger/{pid}", h.editPassenger)
		r.Post("/delete_passenger", h.deletePassenger)

		r.Get("/flights", h.listFlights)
		r.Post("/add_flight", h.addFlight)
		r.Get("/edit_flight/{flight_no}", h.editFlightPage)
		r.Post("/edit_flight/{flight_no}", h.editFlight)
		r.Post("/delete_flight", h.deleteFlight)

		r.Get("/shipments", h.listShipments)
		r.Post("/add_shipment", h.addShipment)
		r.Get("/edit_shipment/{id}", h.editShipmentPage)
		r.Post("/edit_shipment/{id}", h.editShipment)
		r.Post("/delete_shipment", h.deleteShipment)
	})

	return r
}

// accessLog writes one structured line per request.
func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
