package model

// ListingResult is a listing with its read-only projections assembled at query time.
type ListingResult struct {
	Listing
	Photos              []Photo              `json:"photos"`
	Services            []ServiceAssociation `json:"services"`
	UniversityDistances []DistanceRecord     `json:"university_distances"`
	NearbyPlaces        []NearbyPlace        `json:"nearby_places"`
	ReviewCount         int                  `json:"review_count"`
	AverageRating       Amount               `json:"average_rating"`
	FavoriteCount       int                  `json:"favorite_count"`
	// MinDistanceKm is set when the query was scoped to a campus or university.
	MinDistanceKm *Amount `json:"min_distance_km,omitempty"`
}

// Suggestion is the lightweight autocomplete projection.
type Suggestion struct {
	ID           int64   `db:"id" json:"id"`
	Title        string  `db:"title" json:"title"`
	Address      string  `db:"address" json:"address"`
	MonthlyPrice Amount  `db:"monthly_price" json:"monthly_price"`
	Rooms        int     `db:"rooms" json:"rooms"`
	Thumbnail    *string `db:"thumbnail" json:"thumbnail"`
}

// Page is the paginated response envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
