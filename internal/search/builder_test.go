package search

import (
	"math"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func plan(t *testing.T, raw string) *Plan {
	t.Helper()
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", raw, err)
	}
	return NewPlan(ParseCriteria(q))
}

func TestBuildBaseIsPublishedOnly(t *testing.T) {
	q := plan(t, "").Build(1, 6)

	if !strings.Contains(q.CountSQL, "WHERE a.status = $1") {
		t.Errorf("count query lacks published predicate:\n%s", q.CountSQL)
	}
	if !reflect.DeepEqual(q.CountArgs, []interface{}{"published"}) {
		t.Errorf("CountArgs = %v", q.CountArgs)
	}
	if !reflect.DeepEqual(q.PageArgs, []interface{}{"published", 6, 0}) {
		t.Errorf("PageArgs = %v", q.PageArgs)
	}
	if !strings.Contains(q.PageSQL, "ORDER BY a.monthly_price ASC, a.id ASC") {
		t.Errorf("unscoped search must order by price:\n%s", q.PageSQL)
	}
	if !strings.Contains(q.PageSQL, "LIMIT $2 OFFSET $3") {
		t.Errorf("pagination placeholders wrong:\n%s", q.PageSQL)
	}
}

func TestBuildPriceRangeIsInclusive(t *testing.T) {
	q := plan(t, "min_price=200&max_price=500").Build(1, 6)

	for _, want := range []string{"a.monthly_price >= $2", "a.monthly_price <= $3"} {
		if !strings.Contains(q.CountSQL, want) {
			t.Errorf("missing %q in:\n%s", want, q.CountSQL)
		}
	}
	if !reflect.DeepEqual(q.CountArgs, []interface{}{"published", "200", "500"}) {
		t.Errorf("CountArgs = %v", q.CountArgs)
	}
}

func TestBuildTextSearchEscapesWildcards(t *testing.T) {
	q := plan(t, "q=50%25_off").Build(1, 6)

	want := "(a.title ILIKE $2 OR a.description ILIKE $2 OR a.address ILIKE $2)"
	if !strings.Contains(q.CountSQL, want) {
		t.Errorf("missing %q in:\n%s", want, q.CountSQL)
	}
	if q.CountArgs[1] != `%50\%\_off%` {
		t.Errorf("text arg = %q", q.CountArgs[1])
	}
}

func TestBuildServicesRequireAll(t *testing.T) {
	q := plan(t, "services=3,5,3").Build(1, 6)

	want := "s.service_id IN ($2, $3) GROUP BY s.accommodation_id HAVING COUNT(DISTINCT s.service_id) = $4"
	if !strings.Contains(q.CountSQL, want) {
		t.Errorf("missing %q in:\n%s", want, q.CountSQL)
	}
	if !reflect.DeepEqual(q.CountArgs, []interface{}{"published", int64(3), int64(5), 2}) {
		t.Errorf("CountArgs = %v", q.CountArgs)
	}
}

func TestBuildUniversityOrdersByDistance(t *testing.T) {
	q := plan(t, "university_id=7&max_price=600").Build(2, 6)

	if !strings.Contains(q.CountSQL, "c.university_id = $3") {
		t.Errorf("university filter missing:\n%s", q.CountSQL)
	}
	if !strings.Contains(q.PageSQL, "MIN(d.distance_km) AS min_distance") {
		t.Errorf("dedupe stage must compute min distance:\n%s", q.PageSQL)
	}
	if !strings.Contains(q.PageSQL, "WHERE c.university_id = $4) GROUP BY m.id") {
		t.Errorf("ranking scope must be the university's campuses:\n%s", q.PageSQL)
	}
	if !strings.Contains(q.PageSQL, "ORDER BY r.min_distance ASC NULLS LAST, a.monthly_price ASC, a.id ASC") {
		t.Errorf("scoped search must order by distance then price:\n%s", q.PageSQL)
	}
	wantArgs := []interface{}{"published", "600", int64(7), int64(7), 6, 6}
	if !reflect.DeepEqual(q.PageArgs, wantArgs) {
		t.Errorf("PageArgs = %v, expected %v", q.PageArgs, wantArgs)
	}
}

func TestBuildCampusTakesPrecedence(t *testing.T) {
	q := plan(t, "university_id=7&campus_id=12").Build(1, 6)

	if strings.Contains(q.PageSQL, "university_id =") {
		t.Errorf("university id must be ignored when campus id is present:\n%s", q.PageSQL)
	}
	if !strings.Contains(q.CountSQL, "d.campus_id = $2") {
		t.Errorf("campus filter missing:\n%s", q.CountSQL)
	}
	if !strings.Contains(q.PageSQL, "AND d.campus_id = $3 GROUP BY m.id") {
		t.Errorf("ranking must be scoped to the campus:\n%s", q.PageSQL)
	}
	if !reflect.DeepEqual(q.CountArgs, []interface{}{"published", int64(12)}) {
		t.Errorf("CountArgs = %v", q.CountArgs)
	}
}

func TestBuildCountArgsArePrefixOfPageArgs(t *testing.T) {
	q := plan(t, "q=casa&min_rooms=1&max_rooms=4&university_id=1&services=1,2").Build(3, 6)

	if len(q.CountArgs) >= len(q.PageArgs) {
		t.Fatalf("count args %d, page args %d", len(q.CountArgs), len(q.PageArgs))
	}
	if !reflect.DeepEqual(q.CountArgs, q.PageArgs[:len(q.CountArgs)]) {
		t.Errorf("count args %v are not a prefix of %v", q.CountArgs, q.PageArgs)
	}
	if q.PageArgs[len(q.PageArgs)-1] != 12 {
		t.Errorf("offset = %v, expected 12", q.PageArgs[len(q.PageArgs)-1])
	}
	if strings.Count(q.CountSQL, " AND ") < 5 {
		t.Errorf("expected every criterion AND-ed:\n%s", q.CountSQL)
	}
}

func TestBuildClampsPage(t *testing.T) {
	q := plan(t, "").Build(0, 6)
	if q.PageArgs[len(q.PageArgs)-1] != 0 {
		t.Errorf("offset = %v, expected 0", q.PageArgs[len(q.PageArgs)-1])
	}
}

func TestBuildClampsHugePage(t *testing.T) {
	q := plan(t, "").Build(math.MaxInt, 6)
	offset, ok := q.PageArgs[len(q.PageArgs)-1].(int)
	if !ok || offset != (MaxPage-1)*6 {
		t.Errorf("offset = %v, expected %d", q.PageArgs[len(q.PageArgs)-1], (MaxPage-1)*6)
	}
}

func TestAutocompleteQuery(t *testing.T) {
	sql, args := AutocompleteQuery("Av_", 8)

	if !strings.Contains(sql, "(a.title ILIKE $2 OR a.address ILIKE $2)") {
		t.Errorf("autocomplete must match title or address:\n%s", sql)
	}
	want := []interface{}{"published", `%Av\_%`, `Av\_%`, 8}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, expected %v", args, want)
	}
}

func TestDetailQuery(t *testing.T) {
	sql, args := DetailQuery(5)
	if !strings.Contains(sql, "JOIN accommodations a ON a.id = r.id") {
		t.Errorf("detail query must select by id:\n%s", sql)
	}
	if !reflect.DeepEqual(args, []interface{}{int64(5)}) {
		t.Errorf("args = %v", args)
	}
}
