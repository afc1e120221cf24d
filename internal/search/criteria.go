package search

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Criteria is the parsed set of optional search filters. A nil pointer or
// empty value means the filter was not supplied (or could not be parsed).
type Criteria struct {
	Text         string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MinRooms     *int
	MaxRooms     *int
	UniversityID *int64
	CampusID     *int64
	ServiceIDs   []int64
	Page         int
}

// ParseCriteria extracts the filters from a query string. Malformed values are
// dropped as if they had not been sent; parsing never fails.
func ParseCriteria(query url.Values) Criteria {
	c := Criteria{
		Text:         CleanText(query.Get("q")),
		MinPrice:     parsePrice(query.Get("min_price"), decimal.Decimal.RoundCeil),
		MaxPrice:     parsePrice(query.Get("max_price"), decimal.Decimal.RoundFloor),
		MinRooms:     parseInt(query.Get("min_rooms")),
		MaxRooms:     parseInt(query.Get("max_rooms")),
		UniversityID: parseID(query.Get("university_id")),
		CampusID:     parseID(query.Get("campus_id")),
		ServiceIDs:   parseIDList(query.Get("services")),
		Page:         ParsePage(query.Get("page")),
	}
	return c
}

// MaxPage is the last addressable page. Larger requests land on it and come
// back empty.
const MaxPage = math.MaxInt32

// ParsePage reads a 1-based page number. Missing or malformed values mean the
// first page; values past MaxPage are clamped to it.
func ParsePage(v string) int {
	v = strings.TrimSpace(v)
	p, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(v, "-") {
			return MaxPage
		}
		return 1
	}
	switch {
	case p < 1:
		return 1
	case p > MaxPage:
		return MaxPage
	}
	return int(p)
}

// CleanText normalizes free text before it reaches the database: invalid
// UTF-8 and NUL bytes are removed, then surrounding space is trimmed.
func CleanText(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.TrimSpace(s)
}

const (
	maxPriceInput = 32
	maxPriceScale = 20
)

// priceLimit bounds price filters well beyond any storable monthly price.
var priceLimit = decimal.New(1, 9)

// parsePrice reads a price bound. Values with absurd exponents are dropped,
// the rest are clamped to priceLimit and rounded to cents with round.
func parsePrice(v string, round func(decimal.Decimal, int32) decimal.Decimal) *decimal.Decimal {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > maxPriceInput {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	if exp := d.Exponent(); exp > maxPriceScale || exp < -maxPriceScale {
		return nil
	}
	switch {
	case d.GreaterThan(priceLimit):
		d = priceLimit
	case d.LessThan(priceLimit.Neg()):
		d = priceLimit.Neg()
	}
	d = round(d, 2)
	return &d
}

// parseInt reads an integer filter that has to fit a Postgres INTEGER.
func parseInt(v string) *int {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return nil
	}
	i := int(n)
	return &i
}

func parseID(v string) *int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// parseIDList splits a comma-joined id list, dropping malformed and repeated ids.
func parseIDList(v string) []int64 {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	seen := make(map[int64]struct{})
	var ids []int64
	for _, part := range strings.Split(v, ",") {
		id := parseID(part)
		if id == nil {
			continue
		}
		if _, dup := seen[*id]; dup {
			continue
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}
	return ids
}
