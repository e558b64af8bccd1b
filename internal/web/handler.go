package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/getawayhq/getaway-platform/internal/bookings"
	"github.com/getawayhq/getaway-platform/internal/catalog"
	"github.com/getawayhq/getaway-platform/pkg/logging"
)

// Handler serves the browse-and-book pages: the landing grid and the
// property detail view with its reservation calendar.
type Handler struct {
	catalog  catalog.Repository
	bookings *bookings.Service
	userID   string
	logger   *logging.Logger
}

// NewHandler creates a web handler writing reservations under userID.
func NewHandler(catalogRepo catalog.Repository, svc *bookings.Service, userID string, logger *logging.Logger) *Handler {
	return &Handler{
		catalog:  catalogRepo,
		bookings: svc,
		userID:   userID,
		logger:   logger,
	}
}

// Landing handles GET / requests: hero search box plus the property grid.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	properties, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("failed to load catalog", "error", err)
		http.Error(w, "failed to load properties", http.StatusInternalServerError)
		return
	}

	h.render(w, landingTmpl, landingPage{Properties: properties})
}

// Detail handles GET /stays/{propertyID} requests. The selected range and
// any submit outcome travel in the query string so a failed reservation
// keeps its dates on screen.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	property, ok := h.property(w, r)
	if !ok {
		return
	}

	list, err := h.bookings.ListBookings(r.Context(), property.ID)
	if err != nil {
		h.logger.Error("failed to load bookings", "error", err, "property_id", property.ID)
		http.Error(w, "failed to load availability", http.StatusBadGateway)
		return
	}

	q := r.URL.Query()
	page := detailPage{
		Property: *property,
		Months:   buildMonths(bookings.Today(), 3, list),
		Error:    q.Get("error"),
		Booked:   q.Get("booked") == "1",
	}

	if start, err := bookings.ParseDate(q.Get("start")); err == nil {
		if end, err := bookings.ParseDate(q.Get("end")); err == nil {
			sel := bookings.Selection{Start: &start, End: &end}
			page.StartDate = start.String()
			page.EndDate = end.String()
			page.Nights = bookings.Nights(sel)
			page.Total = bookings.Total(page.Nights, property.Price)
		}
	}

	h.render(w, detailTmpl, page)
}

// Reserve handles POST /stays/{propertyID}/reserve form submissions and
// redirects back to the detail view with the outcome.
func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	property, ok := h.property(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	rawStart := r.PostFormValue("start_date")
	rawEnd := r.PostFormValue("end_date")
	detailURL := "/stays/" + strconv.FormatInt(property.ID, 10)

	redirectErr := func(msg string) {
		params := url.Values{}
		params.Set("error", msg)
		if rawStart != "" {
			params.Set("start", rawStart)
		}
		if rawEnd != "" {
			params.Set("end", rawEnd)
		}
		http.Redirect(w, r, detailURL+"?"+params.Encode(), http.StatusSeeOther)
	}

	if rawStart == "" || rawEnd == "" {
		redirectErr("Please select a date range")
		return
	}

	start, err := bookings.ParseDate(rawStart)
	if err != nil {
		redirectErr("Please select a valid date range")
		return
	}
	end, err := bookings.ParseDate(rawEnd)
	if err != nil {
		redirectErr("Please select a valid date range")
		return
	}

	existing, err := h.bookings.ListBookings(r.Context(), property.ID)
	if err != nil {
		h.logger.Error("failed to load bookings", "error", err, "property_id", property.ID)
		redirectErr("Failed to create booking. Please try again.")
		return
	}

	// The calendar disables blocked days, but the range must be re-checked
	// end to end: two free endpoints can straddle a booked middle day.
	var sel bookings.Selection
	if err := sel.Select(start, end, existing, bookings.Today()); err != nil {
		redirectErr(err.Error())
		return
	}

	if _, _, err := h.bookings.Submit(r.Context(), property.ID, h.userID, sel); err != nil {
		if bookings.IsValidationError(err) {
			redirectErr(err.Error())
			return
		}
		redirectErr("Failed to create booking. Please try again.")
		return
	}

	// Success clears the selection; the fresh fetch renders the new range
	// as blocked.
	http.Redirect(w, r, detailURL+"?booked=1", http.StatusSeeOther)
}

func (h *Handler) property(w http.ResponseWriter, r *http.Request) (*catalog.Property, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return nil, false
	}
	property, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrPropertyNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.Error("failed to load property", "error", err, "property_id", id)
		http.Error(w, "failed to load property", http.StatusInternalServerError)
		return nil, false
	}
	return property, true
}

type landingPage struct {
	Properties []catalog.Property
}

type detailPage struct {
	Property  catalog.Property
	Months    []monthView
	StartDate string
	EndDate   string
	Nights    int
	Total     int
	Error     string
	Booked    bool
}

type monthView struct {
	Label string
	Weeks [][]dayCell
}

type dayCell struct {
	Day     int
	Date    string
	Blocked bool
	Past    bool
	Empty   bool
}

// buildMonths renders the next n calendar months as week grids, striking
// through days covered by existing bookings and disabling days before today.
func buildMonths(today bookings.Date, n int, existing []bookings.Booking) []monthView {
	first := today.Time()
	firstOfMonth := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]monthView, 0, n)
	for i := 0; i < n; i++ {
		monthStart := firstOfMonth.AddDate(0, i, 0)
		months = append(months, buildMonth(monthStart, today, existing))
	}
	return months
}

func buildMonth(monthStart time.Time, today bookings.Date, existing []bookings.Booking) monthView {
	view := monthView{Label: monthStart.Format("January 2006")}

	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	week := make([]dayCell, 0, 7)

	// Pad to the first weekday (weeks start on Sunday).
	for i := 0; i < int(monthStart.Weekday()); i++ {
		week = append(week, dayCell{Empty: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		d := bookings.NewDate(monthStart.Year(), monthStart.Month(), day)
		week = append(week, dayCell{
			Day:     day,
			Date:    d.String(),
			Blocked: bookings.IsBlocked(d, existing),
			Past:    d.Before(today),
		})
		if len(week) == 7 {
			view.Weeks = append(view.Weeks, week)
			week = make([]dayCell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, dayCell{Empty: true})
		}
		view.Weeks = append(view.Weeks, week)
	}
	return view
}
