package model

import "time"

// Status is the lifecycle state of an accommodation.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusHidden    Status = "hidden"
	StatusDeleted   Status = "deleted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusHidden, StatusDeleted:
		return true
	}
	return false
}

type Listing struct {
	ID               int64     `db:"id" json:"id"`
	OwnerID          int64     `db:"owner_id" json:"owner"`
	Title            string    `db:"title" json:"title"`
	Description      string    `db:"description" json:"description"`
	Type             string    `db:"accommodation_type" json:"accommodation_type"`
	Address          string    `db:"address" json:"address"`
	Latitude         *float64  `db:"latitude" json:"latitude"`
	Longitude        *float64  `db:"longitude" json:"longitude"`
	MonthlyPrice     Amount    `db:"monthly_price" json:"monthly_price"`
	Rooms            int       `db:"rooms" json:"rooms"`
	CoexistenceRules string    `db:"coexistence_rules" json:"coexistence_rules"`
	Status           Status    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// ListingInput carries the owner-editable attributes of a new accommodation.
type ListingInput struct {
	Title            string   `json:"title" binding:"required,max=255"`
	Description      string   `json:"description"`
	Type             string   `json:"accommodation_type" binding:"required,max=50"`
	Address          string   `json:"address" binding:"required,max=255"`
	Latitude         *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	MonthlyPrice     *Amount  `json:"monthly_price" binding:"required"`
	Rooms            int      `json:"rooms" binding:"min=0"`
	CoexistenceRules string   `json:"coexistence_rules"`
}

// ListingPatch is a partial update; nil fields are left untouched.
type ListingPatch struct {
	Title            *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Description      *string  `json:"description"`
	Type             *string  `json:"accommodation_type" binding:"omitempty,max=50"`
	Address          *string  `json:"address" binding:"omitempty,min=1,max=255"`
	Latitude         *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	MonthlyPrice     *Amount  `json:"monthly_price"`
	Rooms            *int     `json:"rooms" binding:"omitempty,min=0"`
	CoexistenceRules *string  `json:"coexistence_rules"`
}

// Apply copies the non-nil patch fields onto l.
func (p ListingPatch) Apply(l *Listing) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.Latitude != nil {
		l.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		l.Longitude = p.Longitude
	}
	if p.MonthlyPrice != nil {
		l.MonthlyPrice = *p.MonthlyPrice
	}
	if p.Rooms != nil {
		l.Rooms = *p.Rooms
	}
	if p.CoexistenceRules != nil {
		l.CoexistenceRules = *p.CoexistenceRules
	}
}

type AccommodationType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
