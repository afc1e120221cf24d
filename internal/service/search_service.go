package service

import (
	"context"
	"fmt"

	"housing-service/internal/model"
	"housing-service/internal/search"
)

// SearchPage is one page of search results with the totals needed for the
// pagination envelope.
type SearchPage struct {
	Results  []model.ListingResult
	Count    int
	Page     int
	PageSize int
}

func (p SearchPage) HasNext() bool {
	return p.PageSize > 0 && p.Page < (p.Count+p.PageSize-1)/p.PageSize
}


func (p SearchPage) HasPrevious() bool { return p.Page > 1 }

type SearchService struct {
	store           SearchStore
	pageSize        int
	suggestLimit    int
	suggestMaxLimit int
}

func NewSearchService(store SearchStore, pageSize, suggestLimit, suggestMaxLimit int) *SearchService {
	return &SearchService{
		store:           store,
		pageSize:        pageSize,
		suggestLimit:    suggestLimit,
		suggestMaxLimit: suggestMaxLimit,
	}
}

// Search runs the published-only search described by c. An empty match is a
// successful empty page.
func (s *SearchService) Search(ctx context.Context, c search.Criteria) (SearchPage, error) {
	page := c.Page
	switch {
	case page < 1:
		page = 1
	case page > search.MaxPage:
		page = search.MaxPage
	}
	q := search.NewPlan(c).Build(page, s.pageSize)

	results, total, err := s.store.Search(ctx, q)
	if err != nil {
		return SearchPage{}, fmt.Errorf("SearchService.Search: %w", err)
	}
	return SearchPage{Results: results, Count: total, Page: page, PageSize: s.pageSize}, nil
}

// Autocomplete suggests published accommodations whose title or address
// contains term. A missing limit uses the default and large limits are capped.
func (s *SearchService) Autocomplete(ctx context.Context, term string, limit int) ([]model.Suggestion, error) {
	term = search.CleanText(term)
	if term == "" {
		return []model.Suggestion{}, nil
	}
	if limit <= 0 {
		limit = s.suggestLimit
	}
	if limit > s.suggestMaxLimit {
		limit = s.suggestMaxLimit
	}

	out, err := s.store.Autocomplete(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("SearchService.Autocomplete: %w", err)
	}
	return out, nil
}
