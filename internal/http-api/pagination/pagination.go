package pagination

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrInvalidPage signals a page query parameter that is not a positive integer.
var ErrInvalidPage = errors.New("page must be a positive integer")

// Envelope is the response shape for paginated list endpoints.
type Envelope struct {
	Results  any     `json:"results"`
	Count    int64   `json:"count"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
}

// ParsePage reads the page parameter from the request query. An absent
// parameter means page 1.
func ParsePage(c *gin.Context, paramName string) (int, error) {
	raw := c.Query(paramName)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, ErrInvalidPage
	}
	return page, nil
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// NewEnvelope builds the paginated response for the current request.
// Previous is null on the first page; Next is null when no rows exist beyond
// the current window, which also covers requests past the last page.
func NewEnvelope(c *gin.Context, paramName string, page, pageSize int, count int64, results any) Envelope {
	env := Envelope{Results: results, Count: count}
	if page > 1 {
		link := pageLink(c, paramName, page-1)
		env.Previous = &link
	}
	if int64(page*pageSize) < count {
		link := pageLink(c, paramName, page+1)
		env.Next = &link
	}
	return env
}

// pageLink rebuilds the request URL with the page parameter replaced,
// preserving every other query parameter.
func pageLink(c *gin.Context, paramName string, page int) string {
	u := *c.Request.URL
	q := u.Query()
	q.Set(paramName, strconv.Itoa(page))
	u.RawQuery = q.Encode()

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + u.Path + "?" + u.RawQuery
}
