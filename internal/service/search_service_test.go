package service_test

import (
	"context"
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"housing-service/internal/mocks"
	"housing-service/internal/model"
	"housing-service/internal/search"
	"housing-service/internal/service"
)

func TestSearchServiceBuildsPagedQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSearchStore(ctrl)
	svc := service.NewSearchService(store, 6, 8, 20)

	c := search.ParseCriteria(url.Values{"min_price": {"200"}, "max_price": {"500"}, "page": {"2"}})
	store.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q search.Query) ([]model.ListingResult, int, error) {
		if !strings.Contains(q.PageSQL, "a.monthly_price ASC, a.id ASC") {
			t.Errorf("unscoped search must order by price: %s", q.PageSQL)
		}
		n := len(q.PageArgs)
		if q.PageArgs[n-2] != 6 || q.PageArgs[n-1] != 6 {
			t.Errorf("limit/offset = %v, %v", q.PageArgs[n-2], q.PageArgs[n-1])
		}
		return []model.ListingResult{{}}, 13, nil
	})

	page, err := svc.Search(context.Background(), c)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if page.Count != 13 || page.Page != 2 || !page.HasNext() || !page.HasPrevious() {
		t.Errorf("Search() = %+v", page)
	}
}

func TestSearchServiceEmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSearchStore(ctrl)
	svc := service.NewSearchService(store, 6, 8, 20)

	store.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]model.ListingResult{}, 0, nil)

	page, err := svc.Search(context.Background(), search.ParseCriteria(url.Values{"min_price": {"1000"}, "max_price": {"5000"}}))
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if page.Count != 0 || len(page.Results) != 0 || page.HasNext() || page.HasPrevious() {
		t.Errorf("Search() = %+v", page)
	}
}

func TestSearchServiceAutocompleteLimits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: 8},
		{name: "explicit", limit: 3, want: 3},
		{name: "capped", limit: 500, want: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockSearchStore(ctrl)
			svc := service.NewSearchService(store, 6, 8, 20)
			store.EXPECT().Autocomplete(gomock.Any(), "loft", tt.want).Return([]model.Suggestion{}, nil)

			if _, err := svc.Autocomplete(context.Background(), " loft ", tt.limit); err != nil {
				t.Fatalf("Autocomplete() error = %v", err)
			}
		})
	}
}

func TestSearchServiceAutocompleteBlankTerm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewSearchService(mocks.NewMockSearchStore(ctrl), 6, 8, 20)

	out, err := svc.Autocomplete(context.Background(), "   ", 5)
	if err != nil || out == nil || len(out) != 0 {
		t.Fatalf("Autocomplete() = %v, %v", out, err)
	}
}

func TestSearchServiceHugePageIsPastTheEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSearchStore(ctrl)
	svc := service.NewSearchService(store, 6, 8, 20)

	store.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]model.ListingResult{}, 13, nil)

	page, err := svc.Search(context.Background(), search.Criteria{Page: math.MaxInt})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if page.Page != search.MaxPage || page.HasNext() || !page.HasPrevious() {
		t.Errorf("Search() = %+v", page)
	}
}

func TestSearchServiceAutocompleteCleansTerm(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSearchStore(ctrl)
	svc := service.NewSearchService(store, 6, 8, 20)
	store.EXPECT().Autocomplete(gomock.Any(), "loft", 8).Return([]model.Suggestion{}, nil)

	if _, err := svc.Autocomplete(context.Background(), " lo\x00ft\xff ", 0); err != nil {
		t.Fatalf("Autocomplete() error = %v", err)
	}
	out, err := svc.Autocomplete(context.Background(), "\x00\xfe", 0)
	if err != nil || len(out) != 0 {
		t.Fatalf("Autocomplete(only junk) = %v, %v", out, err)
	}
}
