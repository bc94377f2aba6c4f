package model

// User is the authenticated operator as returned by the upstream auth
// endpoints. The upstream store is Mongo-backed, so identifiers travel
// as the "_id" field.
//
// Fields:
//  ID    – upstream identifier.
//  Name  – display name shown in the navigation bar.
//  Email – login email.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is the payload for POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the payload for POST /auth/register.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register: a bearer token plus the
// user it belongs to.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
