package handler

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"housing-service/internal/model"
)

func envelope[T any](c *gin.Context, results []T, count, page, size int) model.Page[T] {
	if results == nil {
		results = []T{}
	}
	p := model.Page[T]{Count: count, Results: results}
	if page < pageCount(count, size) {
		next := pageURL(c, page+1)
		p.Next = &next
	}
	if page > 1 {
		prev := pageURL(c, page-1)
		p.Previous = &prev
	}
	return p
}

// pageCount is the number of pages needed for count rows. Comparing pages
// instead of multiplying keeps clamped page numbers from overflowing.
func pageCount(count, size int) int {
	if size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// pageURL is the absolute URL of the current request with its page parameter
// replaced. Page 1 is addressed without the parameter.
func pageURL(c *gin.Context, page int) string {
	q := c.Request.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: q.Encode(),
	}
	return u.String()
}
