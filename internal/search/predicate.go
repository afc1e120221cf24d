package search

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"housing-service/internal/model"
)

// binder numbers positional parameters in the order they are bound.
type binder struct {
	args []interface{}
}

func (b *binder) bind(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// Predicate renders one condition over the accommodations row aliased "a".
// Predicates are AND-ed together by the filter stage.
type Predicate func(b *binder) string

func StatusIs(status model.Status) Predicate {
	return func(b *binder) string {
		return "a.status = " + b.bind(string(status))
	}
}

// TextContains matches term as a literal, case-insensitive substring of the
// title, description or address.
func TextContains(term string) Predicate {
	return func(b *binder) string {
		p := b.bind("%" + escapeLike(term) + "%")
		return fmt.Sprintf("(a.title ILIKE %[1]s OR a.description ILIKE %[1]s OR a.address ILIKE %[1]s)", p)
	}
}

func PriceAtLeast(d decimal.Decimal) Predicate {
	return func(b *binder) string {
		return "a.monthly_price >= " + b.bind(d.String())
	}
}

func PriceAtMost(d decimal.Decimal) Predicate {
	return func(b *binder) string {
		return "a.monthly_price <= " + b.bind(d.String())
	}
}

func RoomsAtLeast(n int) Predicate {
	return func(b *binder) string {
		return "a.rooms >= " + b.bind(n)
	}
}

func RoomsAtMost(n int) Predicate {
	return func(b *binder) string {
		return "a.rooms <= " + b.bind(n)
	}
}

// NearCampus keeps listings that have a distance record to the campus.
func NearCampus(campusID int64) Predicate {
	return func(b *binder) string {
		return "EXISTS (SELECT 1 FROM university_distances d WHERE d.accommodation_id = a.id AND d.campus_id = " + b.bind(campusID) + ")"
	}
}

// NearUniversity keeps listings that have a distance record to any campus of the university.
func NearUniversity(universityID int64) Predicate {
	return func(b *binder) string {
		return "EXISTS (SELECT 1 FROM university_distances d JOIN university_campuses c ON c.id = d.campus_id WHERE d.accommodation_id = a.id AND c.university_id = " + b.bind(universityID) + ")"
	}
}

// HasAllServices keeps listings associated with every one of ids. ids must be distinct.
func HasAllServices(ids []int64) Predicate {
	return func(b *binder) string {
		placeholders := make([]string, len(ids))
		for i, id := range ids {
			placeholders[i] = b.bind(id)
		}
		return fmt.Sprintf(
			"a.id IN (SELECT s.accommodation_id FROM accommodation_services s WHERE s.service_id IN (%s) GROUP BY s.accommodation_id HAVING COUNT(DISTINCT s.service_id) = %s)",
			strings.Join(placeholders, ", "), b.bind(len(ids)),
		)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
