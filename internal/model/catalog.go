package model

import "time"

// Service is an amenity from the predefined catalog (WiFi, Water, ...).
type Service struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// ServiceAssociation links an accommodation to a catalog service.
type ServiceAssociation struct {
	ID        int64   `db:"id" json:"id"`
	ListingID int64   `db:"accommodation_id" json:"accommodation_id"`
	Service   Service `db:"service" json:"service"`
	Detail    string  `db:"detail" json:"detail"`
}

type Photo struct {
	ID        int64     `db:"id" json:"id"`
	ListingID int64     `db:"accommodation_id" json:"-"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	OrderNum  int       `db:"order_num" json:"order_num"`
	IsMain    bool      `db:"is_main" json:"is_main"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

type Favorite struct {
	ID        int64     `db:"id" json:"id"`
	StudentID int64     `db:"student_id" json:"student"`
	ListingID int64     `db:"accommodation_id" json:"accommodation"`
	CreatedAt time.Time `db:"date_added" json:"date_added"`
}
