// Package lastfm is a client for the community-tagging provider's
// artist.getTopTags method. Responses for an artist are stable, so they go
// through a read-through disk cache to spare the rate budget on re-runs.
package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/hot100db/hot100/limiter"
	"github.com/hot100db/hot100/readthrough"
	"github.com/hot100db/hot100/request"
)

var baseURL = "https://ws.audioscrobbler.com/2.0/"

// New creates a client with the given API key.
func New(apiKey string) *Client {
	lim := limiter.New("lastfm-next-req", 500*time.Millisecond)
	if err := lim.Load(); err != nil {
		log.Printf("ignoring unreadable lastfm-next-req file: %v", err)
	}
	return &Client{
		apiKey: apiKey,
		lim:    lim,
		cache:  readthrough.New("cache", "lastfm-"),
	}
}

type Client struct {
	apiKey string
	lim    *limiter.Limiter
	cache  *readthrough.ReadThrough
}

// A Tag is one community tag with a confidence scaled from how many
// listeners applied it.
type Tag struct {
	Name       string
	Count      int64
	Confidence float64
}

// FetchArtistTags returns the community's top tags for an artist, most
// applied first. Tag confidence is count/100 capped at 1: a tag the whole
// community agrees on counts for more than a one-off.
func (c *Client) FetchArtistTags(ctx context.Context, name string) ([]Tag, error) {
	query := url.Values{}
	query.Set("method", "artist.gettoptags")
	query.Set("artist", name)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")
	query.Set("autocorrect", "1")

	body, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var results topTagsResults
	dec := json.NewDecoder(body)
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("top tags decode error: %w", err)
	}

	var tags []Tag
	for _, tag := range results.TopTags.Tag {
		if tag.Name == "" || tag.Count == 0 {
			continue
		}
		confidence := float64(tag.Count) / 100
		if confidence > 1 {
			confidence = 1
		}
		tags = append(tags, Tag{
			Name:       tag.Name,
			Count:      tag.Count,
			Confidence: confidence,
		})
	}
	return tags, nil
}

type topTagsResults struct {
	TopTags struct {
		Tag []struct {
			Name  string `json:"name"`
			Count int64  `json:"count"`
		} `json:"tag"`
	} `json:"toptags"`
}

func (c *Client) get(ctx context.Context, query url.Values) (io.ReadCloser, error) {
	key := query.Encode()
	if cached, _, err := c.cache.Get(key); err == nil {
		return cached, nil
	}

	for {
		if err := c.lim.Wait(ctx); err != nil {
			return nil, err
		}

		u, _ := url.Parse(baseURL)
		u.RawQuery = key
		req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("request error: %w", err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request error: %w", err)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			if err := c.lim.Hold(resp.Header.Get("Retry-After")); err != nil {
				return nil, err
			}
			continue
		}
		if err := request.Error(resp); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch error: %w", err)
		}

		body, _, err := c.cache.Set(key, resp.Body)
		if err != nil {
			return nil, fmt.Errorf("cache write error: %w", err)
		}
		return body, nil
	}
}
