package repository

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"housing-service/internal/apperr"
	"housing-service/internal/database"
	"housing-service/internal/logger"
	"housing-service/internal/model"
	"housing-service/internal/search"
)

// integrationDB connects to TEST_DATABASE_URL and migrates a throwaway schema
// that is dropped when the test ends.
func integrationDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	// One connection keeps the session search_path for every statement.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	schema := "housing_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := db.ExecContext(ctx, "CREATE SCHEMA "+schema); err != nil {
		db.Close()
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		if _, err := db.ExecContext(context.Background(), "DROP SCHEMA "+schema+" CASCADE"); err != nil {
			t.Errorf("drop schema: %v", err)
		}
		db.Close()
	})
	if _, err := db.ExecContext(ctx, "SET search_path TO "+schema); err != nil {
		t.Fatalf("set search_path: %v", err)
	}
	if err := database.Migrate(ctx, db, logger.Discard()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

type searchFixture struct {
	t        *testing.T
	db       *sqlx.DB
	listings *ListingRepository
	ids      map[string]int64
}

func (f *searchFixture) listing(title, price string, status model.Status) int64 {
	f.t.Helper()
	l := &model.Listing{
		OwnerID:      1,
		Title:        title,
		Type:         "apartment",
		Address:      "Calle Mercaderes 120",
		MonthlyPrice: model.MustAmount(price),
		Rooms:        2,
		Status:       status,
	}
	if err := f.listings.Create(context.Background(), l); err != nil {
		f.t.Fatalf("Create(%s) error = %v", title, err)
	}
	f.ids[title] = l.ID
	return l.ID
}

func (f *searchFixture) insertID(q string, args ...interface{}) int64 {
	f.t.Helper()
	var id int64
	if err := f.db.QueryRowxContext(context.Background(), q, args...).Scan(&id); err != nil {
		f.t.Fatalf("%s: %v", q, err)
	}
	return id
}

func (f *searchFixture) exec(q string, args ...interface{}) {
	f.t.Helper()
	if _, err := f.db.ExecContext(context.Background(), q, args...); err != nil {
		f.t.Fatalf("%s: %v", q, err)
	}
}

func (f *searchFixture) distance(title string, campusID int64, km string) {
	f.exec(`INSERT INTO university_distances (accommodation_id, campus_id, distance_km) VALUES ($1, $2, $3)`, f.ids[title], campusID, km)
}

func (f *searchFixture) service(title string, serviceID int64) {
	f.exec(`INSERT INTO accommodation_services (accommodation_id, service_id) VALUES ($1, $2)`, f.ids[title], serviceID)
}

func (f *searchFixture) search(query string) ([]model.ListingResult, int) {
	f.t.Helper()
	values, err := url.ParseQuery(query)
	if err != nil {
		f.t.Fatalf("ParseQuery(%q): %v", query, err)
	}
	c := search.ParseCriteria(values)
	results, total, err := NewSearchRepository(f.db).Search(context.Background(), search.NewPlan(c).Build(c.Page, 6))
	if err != nil {
		f.t.Fatalf("Search(%q) error = %v", query, err)
	}
	return results, total
}

func titles(results []model.ListingResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestSearchAgainstPostgres(t *testing.T) {
	db := integrationDB(t)
	f := &searchFixture{t: t, db: db, listings: NewListingRepository(db), ids: map[string]int64{}}

	for _, price := range []string{"150", "200", "250", "350", "450", "500", "550", "650"} {
		f.listing("Depa "+price, price, model.StatusPublished)
	}
	f.exec(`UPDATE accommodations SET title = 'Loft Umacollo' WHERE id = $1`, f.ids["Depa 250"])
	hidden := f.listing("Oculto 300", "300", model.StatusHidden)
	f.listing("Borrador 400", "400", model.StatusDraft)
	deleted := f.listing("Borrado 420", "420", model.StatusDeleted)

	unsa := f.insertID(`INSERT INTO universities (name, abbreviation) VALUES ('Universidad Nacional de San Agustin', 'UNSA') RETURNING id`)
	ucsm := f.insertID(`INSERT INTO universities (name, abbreviation) VALUES ('Universidad Catolica de Santa Maria', 'UCSM') RETURNING id`)
	sociales := f.insertID(`INSERT INTO university_campuses (university_id, name) VALUES ($1, 'Sociales') RETURNING id`, unsa)
	ingenierias := f.insertID(`INSERT INTO university_campuses (university_id, name) VALUES ($1, 'Ingenierias') RETURNING id`, unsa)
	umacollo := f.insertID(`INSERT INTO university_campuses (university_id, name) VALUES ($1, 'Umacollo') RETURNING id`, ucsm)

	f.distance("Depa 200", sociales, "2.80")
	f.distance("Depa 250", sociales, "0.50")
	f.distance("Depa 350", sociales, "4.50")
	f.distance("Depa 450", ingenierias, "1.50")
	f.distance("Depa 500", sociales, "6.20")
	f.distance("Depa 500", ingenierias, "0.90")
	f.distance("Oculto 300", sociales, "0.10")
	f.distance("Depa 150", umacollo, "0.20")

	wifi := f.insertID(`SELECT id FROM predefined_services WHERE name = 'WiFi'`)
	water := f.insertID(`SELECT id FROM predefined_services WHERE name = 'Water'`)
	f.service("Depa 200", wifi)
	f.service("Depa 200", water)
	f.service("Depa 250", wifi)
	f.service("Depa 350", water)
	f.service("Depa 500", wifi)
	f.service("Depa 500", water)

	tests := []struct {
		name       string
		query      string
		wantTitles []string
		wantCount  int
	}{
		{
			name:       "price window is inclusive",
			query:      "min_price=200&max_price=500",
			wantTitles: []string{"Depa 200", "Loft Umacollo", "Depa 350", "Depa 450", "Depa 500"},
			wantCount:  5,
		},
		{
			name:       "services are all required",
			query:      fmt.Sprintf("min_price=200&max_price=500&services=%d,%d", wifi, water),
			wantTitles: []string{"Depa 200", "Depa 500"},
			wantCount:  2,
		},
		{
			name:       "university ranks by nearest campus once per listing",
			query:      fmt.Sprintf("university_id=%d", unsa),
			wantTitles: []string{"Loft Umacollo", "Depa 500", "Depa 450", "Depa 200", "Depa 350"},
			wantCount:  5,
		},
		{
			name:       "campus wins over university",
			query:      fmt.Sprintf("university_id=%d&campus_id=%d", ucsm, ingenierias),
			wantTitles: []string{"Depa 500", "Depa 450"},
			wantCount:  2,
		},
		{
			name:       "text matches case-insensitively",
			query:      "q=UMACOLLO",
			wantTitles: []string{"Loft Umacollo"},
			wantCount:  1,
		},
		{
			name:       "no match is an empty page",
			query:      "min_price=1000&max_price=5000",
			wantTitles: []string{},
			wantCount:  0,
		},
		{
			name:       "second page holds the remainder",
			query:      "page=2",
			wantTitles: []string{"Depa 550", "Depa 650"},
			wantCount:  8,
		},
		{
			name:       "page far past the end is empty",
			query:      "page=99999999999999999999",
			wantTitles: []string{},
			wantCount:  8,
		},
		{
			name:       "out of range filters are dropped",
			query:      "min_rooms=2147483648&max_price=1e200000&q=" + url.QueryEscape("depa\x00\xff"),
			wantTitles: []string{"Depa 150", "Depa 200", "Depa 350", "Depa 450", "Depa 500", "Depa 550"},
			wantCount:  7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, total := f.search(tt.query)
			if total != tt.wantCount {
				t.Errorf("count = %d, expected %d", total, tt.wantCount)
			}
			if got := titles(results); !reflect.DeepEqual(got, tt.wantTitles) {
				t.Errorf("titles = %v, expected %v", got, tt.wantTitles)
			}
			for _, r := range results {
				if r.Status != model.StatusPublished {
					t.Errorf("%s has status %s", r.Title, r.Status)
				}
			}
		})
	}

	t.Run("minimum distance is reported per listing", func(t *testing.T) {
		results, _ := f.search(fmt.Sprintf("university_id=%d", unsa))
		if len(results) < 2 || results[1].MinDistanceKm == nil || results[1].MinDistanceKm.String() != "0.90" {
			t.Fatalf("results = %+v", results)
		}
		if len(results[1].UniversityDistances) != 2 {
			t.Errorf("distances of %s = %+v", results[1].Title, results[1].UniversityDistances)
		}
	})

	t.Run("nearby places are projected", func(t *testing.T) {
		typeID := f.insertID(`SELECT id FROM point_types WHERE name = 'Supermarket'`)
		poi := f.insertID(`INSERT INTO points_of_interest (name, point_type) VALUES ('Plaza Vea', $1) RETURNING id`, typeID)
		f.exec(`INSERT INTO accommodation_nearby_places (accommodation_id, point_of_interest, distance_km, walking_time_min) VALUES ($1, $2, 0.35, 4)`, f.ids["Depa 250"], poi)

		res, err := f.listings.GetResult(context.Background(), f.ids["Depa 250"])
		if err != nil {
			t.Fatalf("GetResult() error = %v", err)
		}
		if len(res.NearbyPlaces) != 1 || res.NearbyPlaces[0].Point != "Plaza Vea" || *res.NearbyPlaces[0].PointType != "Supermarket" {
			t.Errorf("nearby places = %+v", res.NearbyPlaces)
		}
		places, err := NewPointRepository(db).NearbyFor(context.Background(), f.ids["Depa 250"])
		if err != nil || len(places) != 1 || places[0].DistanceKm.String() != "0.35" {
			t.Errorf("NearbyFor() = %+v, %v", places, err)
		}
	})

	t.Run("stale status write is a conflict", func(t *testing.T) {
		ctx := context.Background()
		err := f.listings.SetStatus(ctx, deleted, model.StatusHidden, model.StatusPublished)
		if !apperr.Is(err, apperr.KindConflict) {
			t.Fatalf("SetStatus(deleted row) error = %v, expected conflict", err)
		}
		l, err := f.listings.GetByID(ctx, deleted)
		if err != nil || l.Status != model.StatusDeleted {
			t.Fatalf("deleted row after stale publish = %+v, %v", l, err)
		}

		if err := f.listings.SetStatus(ctx, hidden, model.StatusHidden, model.StatusPublished); err != nil {
			t.Fatalf("SetStatus(hidden row) error = %v", err)
		}
		if err := f.listings.SetStatus(ctx, hidden, model.StatusHidden, model.StatusDeleted); !apperr.Is(err, apperr.KindConflict) {
			t.Errorf("second SetStatus from hidden error = %v, expected conflict", err)
		}
		if err := f.listings.SetStatus(ctx, 1<<40, model.StatusDraft, model.StatusPublished); !apperr.Is(err, apperr.KindNotFound) {
			t.Errorf("SetStatus(missing row) error = %v, expected not found", err)
		}
	})
}
