package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldPaginate(t *testing.T) {
	assert.False(t, ShouldPaginate("", ""))
	assert.True(t, ShouldPaginate("0", ""))
	assert.True(t, ShouldPaginate("", "25"))
}

func TestOffsetAndLimit(t *testing.T) {
	assert.Equal(t, 0, GetOffset(""))
	assert.Equal(t, 10, GetOffset("10"))
	assert.Equal(t, 100, GetLimit("0", ""))
	assert.Equal(t, 15, GetLimit("10", "25"))
}

func TestWriteCountHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/carrier?pagStart=0&pagEnd=2&ord=name", nil)
	WriteCountHeaders(rec, r, 5)

	assert.Equal(t, "5", rec.Header().Get("X-Total-Count"))
	link := rec.Header().Get("Link")
	assert.Contains(t, link, "/carrier?")
	assert.Contains(t, link, "pagStart=2")
	assert.Contains(t, link, "pagEnd=4")
	assert.Contains(t, link, "ord=name")
}

func TestWriteCountHeadersLastPage(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/carrier?pagStart=4&pagEnd=6", nil)
	WriteCountHeaders(rec, r, 5)

	assert.Equal(t, "5", rec.Header().Get("X-Total-Count"))
	assert.Empty(t, rec.Header().Get("Link"))
}

func TestWriteCountHeadersUnpaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/carrier", nil)
	WriteCountHeaders(rec, r, 3)

	assert.Equal(t, "3", rec.Header().Get("X-Total-Count"))
	assert.Empty(t, rec.Header().Get("Link"))
}
