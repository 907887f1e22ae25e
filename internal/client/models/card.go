// Package models holds the wire-level entities of the card directory API.
// All entities are remote-owned: the client never assigns identifiers, it only
// reads them back from server responses.
package models

// Image is a picture reference with alternative text.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Address is the structured postal address shared by cards and user profiles.
type Address struct {
	State       string `json:"state,omitempty"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Zip         string `json:"zip,omitempty"`
}

// Card is a business card owned by a registered user, visible to all
// authenticated users and likeable by any of them. Likes holds the ids of the
// users who liked the card.
type Card struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Web         string   `json:"web"`
	Image       Image    `json:"image"`
	Address     Address  `json:"address"`
	Likes       []string `json:"likes,omitempty"`
	UserID      string   `json:"user_id,omitempty"`
	BizNumber   int      `json:"bizNumber,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// LikedBy reports whether the given user has liked the card.
// An empty userID never matches.
func (c *Card) LikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
