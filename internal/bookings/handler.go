package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/getawayhq/getaway-platform/internal/catalog"
	"github.com/getawayhq/getaway-platform/pkg/logging"
)

// genericSubmitError is the message shown for any store failure. Transient
// and permanent failures read the same to the guest; recovery is a manual
// retry.
const genericSubmitError = "failed to create booking, please try again"

// Handler handles HTTP requests for reservations
type Handler struct {
	svc     *Service
	catalog catalog.Repository
	userID  string
	logger  *logging.Logger
}

// NewHandler creates a bookings handler. userID is the placeholder guest
// identity every reservation is written under until accounts exist.
func NewHandler(svc *Service, catalogRepo catalog.Repository, userID string, logger *logging.Logger) *Handler {
	return &Handler{
		svc:     svc,
		catalog: catalogRepo,
		userID:  userID,
		logger:  logger,
	}
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// CreateBookingRequest is the request body for creating a reservation.
type CreateBookingRequest struct {
	StartDate *Date `json:"start_date"`
	EndDate   *Date `json:"end_date"`
}

// CreateBookingResponse returns the new booking plus the refreshed list so
// clients can re-mark blocked dates without a second round trip.
type CreateBookingResponse struct {
	Booking  *Booking  `json:"booking"`
	Bookings []Booking `json:"bookings"`
}

// ListBookingsResponse is the response for listing a property's bookings.
type ListBookingsResponse struct {
	PropertyID int64     `json:"property_id"`
	Bookings   []Booking `json:"bookings"`
	Count      int       `json:"count"`
}

// AvailabilityResponse carries the blocked days of a date window.
type AvailabilityResponse struct {
	PropertyID   int64  `json:"property_id"`
	From         Date   `json:"from"`
	To           Date   `json:"to"`
	BlockedDates []Date `json:"blocked_dates"`
}

// QuoteResponse prices a prospective stay.
type QuoteResponse struct {
	PropertyID  int64 `json:"property_id"`
	NightlyRate int   `json:"nightly_rate"`
	Nights      int   `json:"nights"`
	Total       int   `json:"total"`
}

// ListBookings handles GET /properties/{propertyID}/bookings requests
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := h.propertyID(w, r)
	if !ok {
		return
	}

	list, err := h.svc.ListBookings(r.Context(), propertyID)
	if err != nil {
		h.logger.Error("failed to list bookings", "error", err, "property_id", propertyID)
		http.Error(w, "failed to list bookings", http.StatusBadGateway)
		return
	}

	response := ListBookingsResponse{
		PropertyID: propertyID,
		Bookings:   list,
		Count:      len(list),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CreateBooking handles POST /properties/{propertyID}/bookings requests
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := h.propertyID(w, r)
	if !ok {
		return
	}

	if _, err := h.catalog.GetByID(r.Context(), propertyID); err != nil {
		http.Error(w, "property not found", http.StatusNotFound)
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sel := Selection{Start: req.StartDate, End: req.EndDate}
	booking, refreshed, err := h.svc.Submit(r.Context(), propertyID, h.userID, sel)
	if err != nil {
		if IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, genericSubmitError, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateBookingResponse{Booking: booking, Bookings: refreshed})
}

// Availability handles GET /properties/{propertyID}/availability requests.
// The window defaults to the next 90 days.
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := h.propertyID(w, r)
	if !ok {
		return
	}

	from := Today()
	to := from.AddDays(90)
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := ParseDate(raw)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := ParseDate(raw)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		to = parsed
	}
	if to.Before(from) {
		http.Error(w, "to must not precede from", http.StatusBadRequest)
		return
	}

	list, err := h.svc.ListBookings(r.Context(), propertyID)
	if err != nil {
		h.logger.Error("failed to load availability", "error", err, "property_id", propertyID)
		http.Error(w, "failed to load availability", http.StatusBadGateway)
		return
	}

	response := AvailabilityResponse{
		PropertyID:   propertyID,
		From:         from,
		To:           to,
		BlockedDates: BlockedDates(list, from, to),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Quote handles GET /properties/{propertyID}/quote requests.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := h.propertyID(w, r)
	if !ok {
		return
	}

	property, err := h.catalog.GetByID(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, catalog.ErrPropertyNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load property", http.StatusInternalServerError)
		return
	}

	start, err := ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "invalid start date", http.StatusBadRequest)
		return
	}
	end, err := ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, "invalid end date", http.StatusBadRequest)
		return
	}

	sel := Selection{Start: &start, End: &end}
	nights := Nights(sel)
	response := QuoteResponse{
		PropertyID:  propertyID,
		NightlyRate: property.Price,
		Nights:      nights,
		Total:       Total(nights, property.Price),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) propertyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
