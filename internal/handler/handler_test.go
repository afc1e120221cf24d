package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"

	"housing-service/internal/logger"
	"housing-service/internal/mocks"
	"housing-service/internal/service"
)

const testSecret = "handler-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type stores struct {
	listings     *mocks.MockListingStore
	catalog      *mocks.MockCatalogStore
	universities *mocks.MockUniversityStore
	search       *mocks.MockSearchStore
	favorites    *mocks.MockFavoriteStore
	reviews      *mocks.MockReviewStore
	points       *mocks.MockPointStore
	routes       *mocks.MockRouteStore
}

// newServer wires every handler over mocked stores, the same way main does.
func newServer(t *testing.T) (http.Handler, *stores) {
	ctrl := gomock.NewController(t)
	s := &stores{
		listings:     mocks.NewMockListingStore(ctrl),
		catalog:      mocks.NewMockCatalogStore(ctrl),
		universities: mocks.NewMockUniversityStore(ctrl),
		search:       mocks.NewMockSearchStore(ctrl),
		favorites:    mocks.NewMockFavoriteStore(ctrl),
		reviews:      mocks.NewMockReviewStore(ctrl),
		points:       mocks.NewMockPointStore(ctrl),
		routes:       mocks.NewMockRouteStore(ctrl),
	}
	log := logger.Discard()
	r := NewRouter(testSecret, "HS512",
		NewListingHandler(service.NewListingService(s.listings, s.catalog, s.universities, 6), log),
		NewSearchHandler(service.NewSearchService(s.search, 6, 8, 20), log),
		NewCatalogHandler(service.NewCatalogService(s.catalog, s.universities, s.listings), log),
		NewFavoriteHandler(service.NewFavoriteService(s.favorites, s.listings), log),
		NewReviewHandler(service.NewReviewService(s.reviews, s.listings), log),
		NewPointHandler(service.NewPointService(s.points, s.listings), log),
		NewRouteHandler(service.NewRouteService(s.routes, s.listings), log),
	)
	return TrimTrailingSlash(r), s
}

func token(t *testing.T, sub string, role string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "roles": []string{role}, "exp": time.Now().Add(time.Hour).Unix()}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func do(t *testing.T, h http.Handler, method, target, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}
