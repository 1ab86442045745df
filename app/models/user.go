package models

import "time"

type Address struct {
	Label   string `json:"label"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Addresses []Address `json:"addresses"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthState is the store's view of the current session. Token fields are
// placeholders until a real identity provider is wired in.
type AuthState struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user,omitempty"`
	Token           string `json:"token,omitempty"`
	RefreshToken    string `json:"refreshToken,omitempty"`
}
