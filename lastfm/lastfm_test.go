package lastfm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchArtistTagsRetriesAfter429(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requests++
		if requests == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"toptags":{"tag":[{"name":"rock","count":100}]}}`))
	}))
	defer srv.Close()

	orig := baseURL
	baseURL = srv.URL
	defer func() { baseURL = orig }()

	c := New("test-key")
	tags, err := c.FetchArtistTags(context.Background(), "Nirvana")
	assert.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Len(t, tags, 1)
	assert.Equal(t, "rock", tags[0].Name)
	assert.Equal(t, 1.0, tags[0].Confidence)
}
