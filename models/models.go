package models

import "time"

// Collection names, one per entity kind (lowercased kind).
const (
	VenueCollection   = "venue"
	ClientCollection  = "client"
	BookingCollection = "booking"
	ExpenseCollection = "expense"
	UserCollection    = "user"
)

// Venue is a bookable location managed in the system.
type Venue struct {
	Name         string   `json:"name" bson:"name" validate:"required"`
	Location     string   `json:"location,omitempty" bson:"location,omitempty"`
	Capacity     *int     `json:"capacity,omitempty" bson:"capacity,omitempty" validate:"omitempty,gte=0"`
	Spaces       []string `json:"spaces,omitempty" bson:"spaces,omitempty"`
	ContactEmail string   `json:"contact_email,omitempty" bson:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone string   `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
}

// Client is a customer booking events (couples, companies, etc.).
type Client struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Email   string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`
	Notes   string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Booking is an event held at a venue. ClientID and VenueID are plain string
// references; existence of the referenced documents is not checked.
type Booking struct {
	Title            string     `json:"title" bson:"title" validate:"required"`
	ClientID         string     `json:"client_id,omitempty" bson:"client_id,omitempty"`
	VenueID          string     `json:"venue_id,omitempty" bson:"venue_id,omitempty"`
	Space            string     `json:"space,omitempty" bson:"space,omitempty"`
	Date             time.Time  `json:"date" bson:"date" validate:"required"`
	EndDate          *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Guests           *int       `json:"guests,omitempty" bson:"guests,omitempty" validate:"omitempty,gte=0"`
	Status           string     `json:"status,omitempty" bson:"status"`
	EstimatedRevenue *float64   `json:"estimated_revenue,omitempty" bson:"estimated_revenue,omitempty" validate:"omitempty,gte=0"`
}

// ApplyDefaults fills fields the request may omit.
func (b *Booking) ApplyDefaults() {
	if b.Status == "" {
		b.Status = "tentative"
	}
}

// Expense is an operational cost, optionally tied to a booking.
type Expense struct {
	Category  string    `json:"category" bson:"category" validate:"required"`
	Amount    *float64  `json:"amount" bson:"amount" validate:"required,gte=0"`
	BookingID string    `json:"booking_id,omitempty" bson:"booking_id,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Date      time.Time `json:"date,omitempty" bson:"date"`
}

// ApplyDefaults stamps the expense date when the request omits it.
func (e *Expense) ApplyDefaults() {
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
}

// User is an admin/teammate account. Declared for later use; no route exposes it.
type User struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Role     string `json:"role,omitempty" bson:"role"`
	IsActive *bool  `json:"is_active,omitempty" bson:"is_active"`
}

func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = "manager"
	}
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}
