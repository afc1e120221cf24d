package search

import (
	"fmt"
	"strings"

	"housing-service/internal/model"
)

// Query is a count statement plus a page statement over the same filtered set.
// CountArgs is always a prefix of PageArgs.
type Query struct {
	CountSQL  string
	CountArgs []interface{}
	PageSQL   string
	PageArgs  []interface{}
}

// scope selects the campuses a listing's distance is measured against when ranking.
type scope struct {
	campusID     *int64
	universityID *int64
}

// Plan is a search broken into independent stages:
// filter (AND of predicates) → dedupe (one row per listing) → order → paginate.
type Plan struct {
	filters []Predicate
	scope   *scope
}

// NewPlan folds the supplied criteria into predicates on top of the
// published-only base population. A campus id takes precedence over a
// university id for both filtering and distance ranking.
func NewPlan(c Criteria) *Plan {
	p := &Plan{filters: []Predicate{StatusIs(model.StatusPublished)}}

	if c.Text != "" {
		p.filters = append(p.filters, TextContains(c.Text))
	}
	if c.MinPrice != nil {
		p.filters = append(p.filters, PriceAtLeast(*c.MinPrice))
	}
	if c.MaxPrice != nil {
		p.filters = append(p.filters, PriceAtMost(*c.MaxPrice))
	}
	if c.MinRooms != nil {
		p.filters = append(p.filters, RoomsAtLeast(*c.MinRooms))
	}
	if c.MaxRooms != nil {
		p.filters = append(p.filters, RoomsAtMost(*c.MaxRooms))
	}

	switch {
	case c.CampusID != nil:
		p.filters = append(p.filters, NearCampus(*c.CampusID))
		p.scope = &scope{campusID: c.CampusID}
	case c.UniversityID != nil:
		p.filters = append(p.filters, NearUniversity(*c.UniversityID))
		p.scope = &scope{universityID: c.UniversityID}
	}

	if len(c.ServiceIDs) > 0 {
		p.filters = append(p.filters, HasAllServices(c.ServiceIDs))
	}
	return p
}

// Build renders the plan for the given 1-based page, clamped to [1, MaxPage].
func (p *Plan) Build(page, pageSize int) Query {
	switch {
	case page < 1:
		page = 1
	case page > MaxPage:
		page = MaxPage
	}
	b := &binder{}
	matched := p.filterStage(b)

	q := Query{
		CountSQL:  fmt.Sprintf("WITH matched AS (%s)\nSELECT COUNT(DISTINCT id) FROM matched", matched),
		CountArgs: append([]interface{}(nil), b.args...),
	}

	ranked := p.dedupeStage(b)
	order := p.orderStage()
	limit, offset := b.bind(pageSize), b.bind((page-1)*pageSize)

	q.PageSQL = fmt.Sprintf(`WITH matched AS (%s),
ranked AS (%s)
SELECT %s
FROM ranked r
JOIN accommodations a ON a.id = r.id
ORDER BY %s
LIMIT %s OFFSET %s`, matched, ranked, resultColumns, order, limit, offset)
	q.PageArgs = b.args
	return q
}

func (p *Plan) filterStage(b *binder) string {
	conditions := make([]string, len(p.filters))
	for i, f := range p.filters {
		conditions[i] = f(b)
	}
	return "SELECT a.id FROM accommodations a WHERE " + strings.Join(conditions, " AND ")
}

// dedupeStage collapses the matched rows to one per listing, carrying the
// minimum distance to the scoped campuses when ranking by proximity.
func (p *Plan) dedupeStage(b *binder) string {
	if p.scope == nil {
		return "SELECT m.id, NULL::numeric AS min_distance FROM matched m GROUP BY m.id"
	}
	var join string
	if p.scope.campusID != nil {
		join = "d.campus_id = " + b.bind(*p.scope.campusID)
	} else {
		join = "d.campus_id IN (SELECT c.id FROM university_campuses c WHERE c.university_id = " + b.bind(*p.scope.universityID) + ")"
	}
	return "SELECT m.id, MIN(d.distance_km) AS min_distance FROM matched m " +
		"LEFT JOIN university_distances d ON d.accommodation_id = m.id AND " + join + " GROUP BY m.id"
}

func (p *Plan) orderStage() string {
	if p.scope != nil {
		return "r.min_distance ASC NULLS LAST, a.monthly_price ASC, a.id ASC"
	}
	return "a.monthly_price ASC, a.id ASC"
}

// DetailQuery selects one listing, whatever its status, with the same projections as a search page.
func DetailQuery(id int64) (string, []interface{}) {
	sql := fmt.Sprintf(`SELECT %s
FROM (SELECT $1::bigint AS id, NULL::numeric AS min_distance) r
JOIN accommodations a ON a.id = r.id`, resultColumns)
	return sql, []interface{}{id}
}

// AutocompleteQuery matches term against title and address of published
// listings, prefix matches on the title first.
func AutocompleteQuery(term string, limit int) (string, []interface{}) {
	b := &binder{}
	status := b.bind(string(model.StatusPublished))
	contains := b.bind("%" + escapeLike(term) + "%")
	prefix := b.bind(escapeLike(term) + "%")
	sql := fmt.Sprintf(`SELECT a.id, a.title, a.address, a.monthly_price, a.rooms,
	(SELECT p.image_url FROM accommodation_photos p WHERE p.accommodation_id = a.id ORDER BY p.is_main DESC, p.order_num ASC, p.id ASC LIMIT 1) AS thumbnail
FROM accommodations a
WHERE a.status = %s AND (a.title ILIKE %s OR a.address ILIKE %s)
ORDER BY (a.title ILIKE %s) DESC, a.title ASC, a.id ASC
LIMIT %s`, status, contains, contains, prefix, b.bind(limit))
	return sql, b.args
}

// resultColumns projects the listing row, its ranking distance and the nested
// photo, service, distance and review/favorite summaries in one round trip.
const resultColumns = `a.id, a.owner_id, a.title, a.description, a.accommodation_type, a.address,
	a.latitude, a.longitude, a.monthly_price, a.rooms, a.coexistence_rules, a.status,
	a.created_at, a.updated_at,
	r.min_distance,
	COALESCE((SELECT json_agg(json_build_object('id', p.id, 'image_url', p.image_url, 'order_num', p.order_num, 'is_main', p.is_main) ORDER BY p.order_num, p.id)
		FROM accommodation_photos p WHERE p.accommodation_id = a.id), '[]') AS photos,
	COALESCE((SELECT json_agg(json_build_object('id', s.id, 'accommodation_id', s.accommodation_id, 'service', json_build_object('id', ps.id, 'name', ps.name), 'detail', s.detail) ORDER BY s.id)
		FROM accommodation_services s JOIN predefined_services ps ON ps.id = s.service_id WHERE s.accommodation_id = a.id), '[]') AS services,
	COALESCE((SELECT json_agg(json_build_object('id', d.id, 'accommodation_id', d.accommodation_id, 'campus_id', c.id, 'campus', c.name, 'campus_university_id', c.university_id,
			'distance_km', d.distance_km, 'walk_time_minutes', d.walk_time_minutes, 'bus_time_minutes', d.bus_time_minutes) ORDER BY d.distance_km, d.id)
		FROM university_distances d JOIN university_campuses c ON c.id = d.campus_id WHERE d.accommodation_id = a.id), '[]') AS university_distances,
	COALESCE((SELECT json_agg(json_build_object('id', n.id, 'accommodation_id', n.accommodation_id, 'point_of_interest_id', pi.id, 'point_of_interest', pi.name,
			'point_type', pt.name, 'distance_km', n.distance_km, 'walking_time_min', n.walking_time_min) ORDER BY n.distance_km NULLS LAST, n.id)
		FROM accommodation_nearby_places n JOIN points_of_interest pi ON pi.id = n.point_of_interest LEFT JOIN point_types pt ON pt.id = pi.point_type
		WHERE n.accommodation_id = a.id), '[]') AS nearby_places,
	(SELECT COUNT(*) FROM reviews rv WHERE rv.accommodation_id = a.id AND rv.status = 'visible') AS review_count,
	(SELECT COALESCE(AVG(rv.rating), 0)::numeric(3,2) FROM reviews rv WHERE rv.accommodation_id = a.id AND rv.status = 'visible') AS average_rating,
	(SELECT COUNT(*) FROM favorites f WHERE f.accommodation_id = a.id) AS favorite_count`
