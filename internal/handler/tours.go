package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rmonterol/tour-admin/internal/api"
	"github.com/rmonterol/tour-admin/internal/booking"
	"github.com/rmonterol/tour-admin/internal/model"
)

// TourHandler serves the tour list and the tour form, including the
// available-date editing that happens inside the form: the date set
// travels through hidden fields and the add/remove buttons post back to
// the same view, so the set is validated server-side on every change.
type TourHandler struct {
	API   *api.Client
	Limit int
}

func NewTourHandler(client *api.Client, limit int) *TourHandler {
	return &TourHandler{API: client, Limit: limit}
}

// tourForm carries the raw form values back into the template. Numeric
// fields stay strings here so invalid input re-renders exactly as typed;
// coercion to numbers happens only when building the submit payload.
type tourForm struct {
	Name        string
	Description string
	Duration    string
	Price       string
	MaxPeople   string
	IsActive    bool
	NewDate     string
}

// List renders one page of tours. The upstream answers with a bare array,
// so pagination is prev/next based on whether the page came back full.
func (h *TourHandler) List(c echo.Context) error {
	page := pageParam(c)
	data := echo.Map{"Title": "Tours", "Page": page}

	tours, err := h.API.ListTours(c.Request().Context(), page, h.Limit)
	if err != nil {
		data["Flash"] = "Error al obtener tours"
		data["FlashKind"] = "error"
		data["Tours"] = []model.Tour{}
		data["HasNext"] = false
		return render(c, "tours.html", data)
	}
	data["Tours"] = tours
	data["HasNext"] = len(tours) == h.Limit
	return render(c, "tours.html", data)
}

// Detail renders a single tour with its available dates.
func (h *TourHandler) Detail(c echo.Context) error {
	t, err := h.API.GetTour(c.Request().Context(), c.Param("id"))
	if err != nil {
		setFlash(c, "error", "Error al obtener el tour")
		return c.Redirect(http.StatusFound, "/tours")
	}
	return render(c, "tour_detail.html", echo.Map{"Title": t.Name, "Tour": t})
}

// New renders the empty creation form. New tours default to active.
func (h *TourHandler) New(c echo.Context) error {
	return h.renderForm(c, "Nuevo Tour", "/tours",
		tourForm{IsActive: true}, booking.ParseDateSet(nil), nil, "", "")
}

// Edit renders the form seeded from the stored tour.
func (h *TourHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	t, err := h.API.GetTour(c.Request().Context(), id)
	if err != nil {
		setFlash(c, "error", "Error al obtener el tour")
		return c.Redirect(http.StatusFound, "/tours")
	}
	vals := tourForm{
		Name:        t.Name,
		Description: t.Description,
		Duration:    strconv.FormatFloat(t.Duration, 'f', -1, 64),
		Price:       strconv.FormatFloat(t.Price, 'f', -1, 64),
		MaxPeople:   strconv.Itoa(t.MaxPeople),
		IsActive:    t.IsActive,
	}
	return h.renderForm(c, "Editar Tour", "/tours/"+id,
		vals, booking.NewDateSet(t.AvailableDates), nil, "", "")
}

// Create handles every post of the creation form: date add/remove actions
// stay entirely client-side (no upstream call) and re-render the form;
// the save action submits.
func (h *TourHandler) Create(c echo.Context) error {
	return h.handleForm(c, "Nuevo Tour", "/tours", "")
}

// Update is Create for an existing tour.
func (h *TourHandler) Update(c echo.Context) error {
	id := c.Param("id")
	return h.handleForm(c, "Editar Tour", "/tours/"+id, id)
}

// Delete removes a tour; failures flash and leave the list unchanged.
func (h *TourHandler) Delete(c echo.Context) error {
	if err := h.API.DeleteTour(c.Request().Context(), c.Param("id")); err != nil {
		setFlash(c, "error", "Error al eliminar tour")
	} else {
		setFlash(c, "success", "Tour eliminado correctamente")
	}
	return c.Redirect(http.StatusFound, "/tours")
}

// handleForm dispatches on the pressed button. id == "" means create.
func (h *TourHandler) handleForm(c echo.Context, title, action, id string) error {
	vals := tourForm{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Duration:    strings.TrimSpace(c.FormValue("duration")),
		Price:       strings.TrimSpace(c.FormValue("price")),
		MaxPeople:   strings.TrimSpace(c.FormValue("maxPeople")),
		IsActive:    c.FormValue("isActive") == "true",
		NewDate:     strings.TrimSpace(c.FormValue("newDate")),
	}
	params, _ := c.FormParams()
	set := booking.ParseDateSet(params["dates"])

	switch act := c.FormValue("action"); {
	case act == "add-date":
		dateErr := ""
		d, err := time.Parse(booking.DayFormat, vals.NewDate)
		if err != nil {
			dateErr = "fecha inválida"
		} else if err := set.Add(d, time.Now()); err != nil {
			switch err {
			case booking.ErrPastDate:
				dateErr = "la fecha ya pasó"
			case booking.ErrDuplicateDate:
				dateErr = "la fecha ya está agregada"
			}
		} else {
			vals.NewDate = ""
		}
		return h.renderForm(c, title, action, vals, set, nil, dateErr, "")

	case strings.HasPrefix(act, "remove-date-"):
		if i, err := strconv.Atoi(strings.TrimPrefix(act, "remove-date-")); err == nil {
			set.Remove(i)
		}
		return h.renderForm(c, title, action, vals, set, nil, "", "")
	}

	// Save.
	fe := booking.FieldErrors{}
	if vals.Name == "" {
		fe["name"] = "el nombre es requerido"
	}
	if fe.Any() {
		return h.renderForm(c, title, action, vals, set, fe, "", "")
	}

	in := model.TourInput{
		Name:           vals.Name,
		Description:    vals.Description,
		Duration:       booking.ParseOptionalFloat(vals.Duration),
		Price:          booking.ParseOptionalFloat(vals.Price),
		MaxPeople:      booking.ParseOptionalInt(vals.MaxPeople),
		IsActive:       vals.IsActive,
		AvailableDates: set.Canonical(),
	}

	ctx := c.Request().Context()
	var err error
	if id == "" {
		_, err = h.API.CreateTour(ctx, in)
	} else {
		_, err = h.API.UpdateTour(ctx, id, in)
	}
	if err != nil {
		return h.renderForm(c, title, action, vals, set, nil, "",
			api.Message(err, "Error al guardar tour"))
	}
	if id == "" {
		setFlash(c, "success", "Tour creado correctamente")
	} else {
		setFlash(c, "success", "Tour actualizado correctamente")
	}
	return c.Redirect(http.StatusFound, "/tours")
}

func (h *TourHandler) renderForm(c echo.Context, title, action string, vals tourForm, set *booking.DateSet, fe booking.FieldErrors, dateErr, apiErr string) error {
	if fe == nil {
		fe = booking.FieldErrors{}
	}
	return render(c, "tour_form.html", echo.Map{
		"Title":     title,
		"Action":    action,
		"Values":    vals,
		"Dates":     set.Days(),
		"Canonical": set.Canonical(),
		"Errors":    fe,
		"DateError": dateErr,
		"Error":     apiErr,
	})
}
