package model

import "time"

type University struct {
	ID           int64    `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Abbreviation string   `db:"abbreviation" json:"abbreviation"`
	Address      string   `db:"address" json:"address"`
	Campuses     []Campus `db:"-" json:"campuses"`
}

type Campus struct {
	ID           int64    `db:"id" json:"id"`
	UniversityID int64    `db:"university_id" json:"university_id"`
	Name         string   `db:"name" json:"name"`
	Address      *string  `db:"address" json:"address"`
	Latitude     *float64 `db:"latitude" json:"latitude"`
	Longitude    *float64 `db:"longitude" json:"longitude"`
}

// DistanceRecord is the precomputed travel distance between an accommodation
// and a campus. Rows are written by the route refresh job and only read here.
type DistanceRecord struct {
	ID              int64  `db:"id" json:"id"`
	ListingID       int64  `db:"accommodation_id" json:"accommodation_id"`
	CampusID        int64  `db:"campus_id" json:"campus_id"`
	Campus          string `db:"campus_name" json:"campus"`
	UniversityID    int64  `db:"university_id" json:"campus_university_id"`
	DistanceKm      Amount `db:"distance_km" json:"distance_km"`
	WalkTimeMinutes *int   `db:"walk_time_minutes" json:"walk_time_minutes"`
	BusTimeMinutes  *int   `db:"bus_time_minutes" json:"bus_time_minutes"`
}

// Route is the stored walking/driving route behind a DistanceRecord.
type Route struct {
	ListingID   int64     `bson:"accommodation_id" json:"accommodation_id"`
	CampusID    int64     `bson:"campus_id" json:"campus_id"`
	Profile     string    `bson:"profile" json:"profile"`
	DistanceKm  float64   `bson:"distance_km" json:"distance_km"`
	DurationMin float64   `bson:"duration_min" json:"duration_min"`
	Geometry    Geometry  `bson:"geometry" json:"geometry"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Geometry is a GeoJSON LineString.
type Geometry struct {
	Type        string      `bson:"type" json:"type"`
	Coordinates [][]float64 `bson:"coordinates" json:"coordinates"`
}
