package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rmonterol/tour-admin/internal/api"
	"github.com/rmonterol/tour-admin/internal/booking"
	"github.com/rmonterol/tour-admin/internal/model"
)

// ReservationHandler serves the reservation list and the booking form.
// The form's derived fields (selectable dates, price preview) come from
// booking.DeriveFormState, called on page load and again through the
// derive endpoint as the operator changes tour or people.
type ReservationHandler struct {
	API   *api.Client
	Limit int
}

func NewReservationHandler(client *api.Client, limit int) *ReservationHandler {
	return &ReservationHandler{API: client, Limit: limit}
}

// List renders one page of reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	page := pageParam(c)
	data := echo.Map{"Title": "Reservaciones", "Page": page, "Pages": 1}

	list, err := h.API.ListReservations(c.Request().Context(), page, h.Limit)
	if err != nil {
		data["Flash"] = "Error al cargar reservaciones"
		data["FlashKind"] = "error"
		data["Reservations"] = []model.Reservation{}
		return render(c, "reservations.html", data)
	}
	data["Reservations"] = list.Data
	if list.Pages > 0 {
		data["Pages"] = list.Pages
	}
	return render(c, "reservations.html", data)
}

// Detail fetches the full reservation before rendering, matching the list
// view's lighter payload.
func (h *ReservationHandler) Detail(c echo.Context) error {
	r, err := h.API.GetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		setFlash(c, "error", "Error al obtener detalles")
		return c.Redirect(http.StatusFound, "/reservations")
	}
	return render(c, "reservation_detail.html", echo.Map{"Title": "Reservación", "Reservation": r})
}

// refData is the reference data every form render needs: the customer
// dropdown and the bookable (active) tours.
type refData struct {
	Customers []model.Customer
	Tours     []model.Tour
}

func (h *ReservationHandler) loadRefs(ctx context.Context) (refData, error) {
	customers, err := h.API.ListCustomers(ctx, 0, 0)
	if err != nil {
		return refData{}, err
	}
	tours, err := h.API.ActiveTours(ctx)
	if err != nil {
		return refData{}, err
	}
	return refData{Customers: customers.Data.Customers, Tours: tours}, nil
}

// New renders the empty booking form: no tour selected, so no selectable
// dates and a price of 0.
func (h *ReservationHandler) New(c echo.Context) error {
	refs, err := h.loadRefs(c.Request().Context())
	if err != nil {
		setFlash(c, "error", "Error al cargar datos del formulario")
		return c.Redirect(http.StatusFound, "/reservations")
	}
	in := model.ReservationInput{People: 1, Status: model.StatusPending}
	return h.renderForm(c, "Nueva Reservación", "/reservations", refs, in,
		booking.DeriveFormState(nil, in.People), false, nil, "")
}

// Edit seeds the form from an existing reservation. The derived fields
// are recomputed from the matched tour, not read from the reservation:
// the reservation's own day is merged into the selectable set so the
// stored choice renders even when the tour's dates changed server-side.
// A tour that went inactive since the booking is appended to the options
// so the reference still resolves.
func (h *ReservationHandler) Edit(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	r, err := h.API.GetReservation(ctx, id)
	if err != nil {
		setFlash(c, "error", "Error al obtener la reservación")
		return c.Redirect(http.StatusFound, "/reservations")
	}
	refs, err := h.loadRefs(ctx)
	if err != nil {
		setFlash(c, "error", "Error al cargar datos del formulario")
		return c.Redirect(http.StatusFound, "/reservations")
	}

	var sel *model.Tour
	if r.Tour != nil {
		for i := range refs.Tours {
			if refs.Tours[i].ID == r.Tour.ID {
				sel = &refs.Tours[i]
				break
			}
		}
		if sel == nil {
			refs.Tours = append(refs.Tours, *r.Tour)
			sel = r.Tour
		}
	}

	in := model.ReservationInput{
		Date:   booking.Day(r.Date),
		People: r.People,
		Status: r.Status,
	}
	if r.Customer != nil {
		in.CustomerID = r.Customer.ID
	}
	if r.Tour != nil {
		in.TourID = r.Tour.ID
	}
	state := booking.DeriveEditState(sel, r.Date, r.People)
	return h.renderForm(c, "Editar Reservación", "/reservations/"+id, refs, in, state, true, nil, "")
}

// Create validates the submission against the chosen tour's current dates
// and books. Any validation failure re-renders inline with no upstream
// write; an upstream failure keeps the form open so input is not lost.
func (h *ReservationHandler) Create(c echo.Context) error {
	return h.handleSubmit(c, "Nueva Reservación", "/reservations", "")
}

// Update is Create for an existing reservation.
func (h *ReservationHandler) Update(c echo.Context) error {
	id := c.Param("id")
	return h.handleSubmit(c, "Editar Reservación", "/reservations/"+id, id)
}

// Delete removes a reservation; the list re-fetch happens via the
// redirect, strictly after the delete response.
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.API.DeleteReservation(c.Request().Context(), c.Param("id")); err != nil {
		setFlash(c, "error", "Error al eliminar reservación")
	} else {
		setFlash(c, "success", "Reservación eliminada correctamente")
	}
	return c.Redirect(http.StatusFound, "/reservations")
}

// deriveResponse is the payload of the derive endpoint. The request's seq
// is echoed back so the form script can discard stale responses.
type deriveResponse struct {
	booking.FormState
	Seq int `json:"seq"`
}

// Derive recomputes the form's dependent fields for the page script: the
// selectable dates and the price preview for (tour, people). With no tour
// selected both are empty/zero.
func (h *ReservationHandler) Derive(c echo.Context) error {
	seq, _ := strconv.Atoi(c.QueryParam("seq"))
	people := booking.ParsePeople(c.QueryParam("people"))

	tourID := strings.TrimSpace(c.QueryParam("tour"))
	if tourID == "" {
		return c.JSON(http.StatusOK, deriveResponse{FormState: booking.DeriveFormState(nil, people), Seq: seq})
	}
	tour, err := h.API.GetTour(c.Request().Context(), tourID)
	if err != nil {
		status := http.StatusBadGateway
		if api.IsStatus(err, http.StatusNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, echo.Map{"error": api.Message(err, "no se pudo cargar el tour")})
	}
	return c.JSON(http.StatusOK, deriveResponse{FormState: booking.DeriveFormState(&tour, people), Seq: seq})
}

// handleSubmit validates and writes a reservation. id == "" means create.
func (h *ReservationHandler) handleSubmit(c echo.Context, title, action, id string) error {
	ctx := c.Request().Context()

	people := 0
	if n, err := strconv.Atoi(strings.TrimSpace(c.FormValue("people"))); err == nil {
		people = n
	}
	in := model.ReservationInput{
		CustomerID: strings.TrimSpace(c.FormValue("customerId")),
		TourID:     strings.TrimSpace(c.FormValue("tourId")),
		Date:       strings.TrimSpace(c.FormValue("date")),
		People:     people,
		Status:     strings.TrimSpace(c.FormValue("status")),
	}
	if in.Status == "" {
		in.Status = model.StatusPending
	}

	// The selectable set is recomputed server-side from the chosen tour;
	// the browser's option list is a convenience, not the authority.
	var (
		sel   *model.Tour
		state booking.FormState
	)
	if in.TourID != "" {
		tour, err := h.API.GetTour(ctx, in.TourID)
		if err != nil {
			return h.rerenderSubmit(c, title, action, id, in, booking.FormState{}, nil,
				api.Message(err, "Error al guardar reservación"))
		}
		sel = &tour
	}
	if id == "" {
		state = booking.DeriveFormState(sel, in.People)
	} else {
		// Edits may keep a date the tour no longer offers.
		existing, err := h.API.GetReservation(ctx, id)
		if err != nil {
			return h.rerenderSubmit(c, title, action, id, in, booking.FormState{}, nil,
				api.Message(err, "Error al guardar reservación"))
		}
		state = booking.DeriveEditState(sel, existing.Date, in.People)
	}

	if fe := booking.ValidateReservation(in, state.Dates); fe.Any() {
		return h.rerenderSubmit(c, title, action, id, in, state, fe, "")
	}

	var err error
	if id == "" {
		_, err = h.API.CreateReservation(ctx, in)
	} else {
		_, err = h.API.UpdateReservation(ctx, id, in)
	}
	if err != nil {
		return h.rerenderSubmit(c, title, action, id, in, state, nil,
			api.Message(err, "Error al guardar reservación"))
	}
	if id == "" {
		setFlash(c, "success", "Reservación creada correctamente")
	} else {
		setFlash(c, "success", "Reservación actualizada correctamente")
	}
	return c.Redirect(http.StatusFound, "/reservations")
}

// rerenderSubmit reloads the reference data and re-renders the form with
// the submitted values, inline errors and derived state intact.
func (h *ReservationHandler) rerenderSubmit(c echo.Context, title, action, id string, in model.ReservationInput, state booking.FormState, fe booking.FieldErrors, apiErr string) error {
	refs, err := h.loadRefs(c.Request().Context())
	if err != nil {
		setFlash(c, "error", "Error al cargar datos del formulario")
		return c.Redirect(http.StatusFound, "/reservations")
	}
	return h.renderForm(c, title, action, refs, in, state, id != "", fe, apiErr)
}

func (h *ReservationHandler) renderForm(c echo.Context, title, action string, refs refData, in model.ReservationInput, state booking.FormState, edit bool, fe booking.FieldErrors, apiErr string) error {
	if fe == nil {
		fe = booking.FieldErrors{}
	}
	return render(c, "reservation_form.html", echo.Map{
		"Title":         title,
		"Action":        action,
		"Customers":     refs.Customers,
		"Tours":         refs.Tours,
		"Values":        in,
		"State":         state,
		"EditMode":      edit,
		"StatusOptions": model.Statuses,
		"Errors":        fe,
		"Error":         apiErr,
	})
}
