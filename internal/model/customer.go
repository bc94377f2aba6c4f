package model

// Customer mirrors the upstream customer document. There are no
// client-side derived fields; the form edits exactly these values.
//
// Fields:
//  ID        – customers._id
//  FirstName – given name.
//  LastName  – family name.
//  Email     – contact email.
//  Phone     – contact phone, free text.
//  Address   – postal address, free text.
type Customer struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// FullName joins first and last name for list rows and dropdown labels.
func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CustomerInput is the create/update payload. It is the same shape as
// Customer minus the identifier.
type CustomerInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// CustomerList is the envelope of GET /customers. The upstream wraps the
// page in a JSend-style body: the rows live under data.customers.
type CustomerList struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Total   int    `json:"total"`
	Pages   int    `json:"pages"`
	Data    struct {
		Customers []Customer `json:"customers"`
	} `json:"data"`
}
