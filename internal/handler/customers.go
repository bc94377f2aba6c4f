package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rmonterol/tour-admin/internal/api"
	"github.com/rmonterol/tour-admin/internal/booking"
	"github.com/rmonterol/tour-admin/internal/model"
)

// CustomerHandler serves the customer list, form and delete endpoints.
type CustomerHandler struct {
	API   *api.Client
	Limit int // rows per page
}

func NewCustomerHandler(client *api.Client, limit int) *CustomerHandler {
	return &CustomerHandler{API: client, Limit: limit}
}

// List renders one page of customers. A fetch failure renders the page
// with an error notification and an empty list rather than crashing the
// view.
func (h *CustomerHandler) List(c echo.Context) error {
	page := pageParam(c)
	data := echo.Map{"Title": "Clientes", "Page": page, "Pages": 1}

	list, err := h.API.ListCustomers(c.Request().Context(), page, h.Limit)
	if err != nil {
		data["Flash"] = "Error al cargar clientes"
		data["FlashKind"] = "error"
		data["Customers"] = []model.Customer{}
		return render(c, "customers.html", data)
	}
	data["Customers"] = list.Data.Customers
	if list.Pages > 0 {
		data["Pages"] = list.Pages
	}
	return render(c, "customers.html", data)
}

// Detail renders a single customer.
func (h *CustomerHandler) Detail(c echo.Context) error {
	cust, err := h.API.GetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		setFlash(c, "error", "Error al obtener el cliente")
		return c.Redirect(http.StatusFound, "/customers")
	}
	return render(c, "customer_detail.html", echo.Map{"Title": cust.FullName(), "Customer": cust})
}

// New renders the empty creation form.
func (h *CustomerHandler) New(c echo.Context) error {
	return h.renderForm(c, "Nuevo Cliente", "/customers", model.CustomerInput{}, nil, "")
}

// Edit renders the form pre-populated from the stored customer.
func (h *CustomerHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	cust, err := h.API.GetCustomer(c.Request().Context(), id)
	if err != nil {
		setFlash(c, "error", "Error al obtener el cliente")
		return c.Redirect(http.StatusFound, "/customers")
	}
	in := model.CustomerInput{
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		Email:     cust.Email,
		Phone:     cust.Phone,
		Address:   cust.Address,
	}
	return h.renderForm(c, "Editar Cliente", "/customers/"+id, in, nil, "")
}

// Create validates and submits a new customer. Validation failures block
// the upstream call and render inline; upstream failures keep the form
// open with the entered values intact.
func (h *CustomerHandler) Create(c echo.Context) error {
	in := customerForm(c)
	if fe := validateCustomer(in); fe.Any() {
		return h.renderForm(c, "Nuevo Cliente", "/customers", in, fe, "")
	}
	if _, err := h.API.CreateCustomer(c.Request().Context(), in); err != nil {
		return h.renderForm(c, "Nuevo Cliente", "/customers", in, nil,
			api.Message(err, "Error al guardar cliente"))
	}
	setFlash(c, "success", "Cliente creado correctamente")
	return c.Redirect(http.StatusFound, "/customers")
}

// Update is Create for an existing customer.
func (h *CustomerHandler) Update(c echo.Context) error {
	id := c.Param("id")
	in := customerForm(c)
	if fe := validateCustomer(in); fe.Any() {
		return h.renderForm(c, "Editar Cliente", "/customers/"+id, in, fe, "")
	}
	if _, err := h.API.UpdateCustomer(c.Request().Context(), id, in); err != nil {
		return h.renderForm(c, "Editar Cliente", "/customers/"+id, in, nil,
			api.Message(err, "Error al guardar cliente"))
	}
	setFlash(c, "success", "Cliente actualizado correctamente")
	return c.Redirect(http.StatusFound, "/customers")
}

// Delete removes a customer and then redirects, so the list re-fetch is
// sequenced strictly after the delete response. A failure (including a
// 404 for a customer already gone server-side) leaves the list as it was
// and only shows the notification.
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.API.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		setFlash(c, "error", "Error al eliminar cliente")
	} else {
		setFlash(c, "success", "Cliente eliminado correctamente")
	}
	return c.Redirect(http.StatusFound, "/customers")
}

func (h *CustomerHandler) renderForm(c echo.Context, title, action string, in model.CustomerInput, fe booking.FieldErrors, apiErr string) error {
	if fe == nil {
		fe = booking.FieldErrors{}
	}
	return render(c, "customer_form.html", echo.Map{
		"Title":  title,
		"Action": action,
		"Values": in,
		"Errors": fe,
		"Error":  apiErr,
	})
}

func customerForm(c echo.Context) model.CustomerInput {
	return model.CustomerInput{
		FirstName: strings.TrimSpace(c.FormValue("firstName")),
		LastName:  strings.TrimSpace(c.FormValue("lastName")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Address:   strings.TrimSpace(c.FormValue("address")),
	}
}

func validateCustomer(in model.CustomerInput) booking.FieldErrors {
	fe := booking.FieldErrors{}
	if in.FirstName == "" {
		fe["firstName"] = "el nombre es requerido"
	}
	if in.LastName == "" {
		fe["lastName"] = "el apellido es requerido"
	}
	if in.Email == "" {
		fe["email"] = "el email es requerido"
	}
	return fe
}
