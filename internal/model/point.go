package model

// PointType classifies points of interest (supermarket, pharmacy, ...).
type PointType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type PointOfInterest struct {
	ID        int64    `db:"id" json:"id"`
	Name      string   `db:"name" json:"name"`
	TypeID    *int64   `db:"point_type" json:"type"`
	TypeName  *string  `db:"type_name" json:"type_name"`
	Address   *string  `db:"address" json:"address"`
	Latitude  *float64 `db:"latitude" json:"latitude"`
	Longitude *float64 `db:"longitude" json:"longitude"`
}

// NearbyPlace is a point of interest close to an accommodation. Like the
// campus distance index it is maintained outside this service.
type NearbyPlace struct {
	ID             int64   `db:"id" json:"id"`
	ListingID      int64   `db:"accommodation_id" json:"accommodation_id"`
	PointID        int64   `db:"point_id" json:"point_of_interest_id"`
	Point          string  `db:"point_name" json:"point_of_interest"`
	PointType      *string `db:"type_name" json:"point_type"`
	DistanceKm     *Amount `db:"distance_km" json:"distance_km"`
	WalkingTimeMin *int    `db:"walking_time_min" json:"walking_time_min"`
}
