package model

import "time"

// Review represents a student's review of a listing.
type Review struct {
	ID        int64     `db:"id" json:"id"`
	ListingID int64     `db:"accommodation_id" json:"accommodation"`
	StudentID int64     `db:"student_id" json:"student"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"review_date" json:"review_date"`
}

const ReviewVisible = "visible"
