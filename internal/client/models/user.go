package models

// Name is a structured person name; Middle is optional.
type Name struct {
	First  string `json:"first"`
	Middle string `json:"middle,omitempty"`
	Last   string `json:"last"`
}

// UserProfile is the remote-owned account document. Updates replace the whole
// document; there is no partial patch on the profile endpoint.
type UserProfile struct {
	Name    Name    `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	Image   Image   `json:"image"`
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Name       Name    `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Address    Address `json:"address"`
	Image      Image   `json:"image"`
	IsBusiness bool    `json:"isBusiness"`
}
