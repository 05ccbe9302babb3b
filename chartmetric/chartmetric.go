// Package chartmetric is a client for the industry-data provider. The
// provider issues short-lived access tokens against a long-lived refresh
// token. The whole source is optional: an unconfigured client is simply
// absent from classification.
package chartmetric

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/hot100db/hot100/limiter"
	"github.com/hot100db/hot100/readthrough"
	"github.com/hot100db/hot100/request"
)

const baseURL = "https://api.chartmetric.com/api"

// New creates a client with the given refresh token.
func New(refreshToken string) *Client {
	lim := limiter.New("chartmetric-next-req", 2*time.Second)
	if err := lim.Load(); err != nil {
		log.Printf("ignoring unreadable chartmetric-next-req file: %v", err)
	}
	return &Client{
		refreshToken: refreshToken,
		lim:          lim,
		cache:        readthrough.New("cache", "chartmetric-"),
	}
}

type Client struct {
	refreshToken string
	lim          *limiter.Limiter
	cache        *readthrough.ReadThrough

	accessToken string
	expiresAt   time.Time
}

// FetchArtistGenres searches for the artist and returns the provider's genre
// names for the top hit.
func (c *Client) FetchArtistGenres(ctx context.Context, name string) ([]string, error) {
	query := url.Values{}
	query.Set("q", name)
	query.Set("type", "artists")
	query.Set("limit", "5")

	key := "search:" + query.Encode()
	body, err := c.getCached(ctx, key, "/search", query)
	if err != nil {
		return nil, err
	}

	var results searchResults
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("artist search decode error: %w", err)
	}

	if len(results.Obj.Artists) == 0 {
		return nil, nil
	}

	var genres []string
	for _, genre := range results.Obj.Artists[0].Genres {
		if genre.Name != "" {
			genres = append(genres, genre.Name)
		}
	}
	return genres, nil
}

type searchResults struct {
	Obj struct {
		Artists []struct {
			ID     int64  `json:"id"`
			Name   string `json:"name"`
			Genres []struct {
				Name string `json:"name"`
			} `json:"genres"`
		} `json:"artists"`
	} `json:"obj"`
}

func (c *Client) getCached(ctx context.Context, key, path string, query url.Values) ([]byte, error) {
	if cached, _, err := c.cache.Get(key); err == nil {
		defer cached.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(cached); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if err := c.lim.Wait(ctx); err != nil {
		return nil, err
	}

	u, _ := url.Parse(baseURL + path)
	u.RawQuery = query.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	if err := request.Error(resp); err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch error: %w", err)
	}

	body, _, err := c.cache.Set(key, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cache write error: %w", err)
	}
	defer body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	if c.accessToken != "" && c.expiresAt.After(time.Now().Add(time.Minute)) {
		return c.accessToken, nil
	}

	payload, _ := json.Marshal(map[string]string{"refreshtoken": c.refreshToken})
	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/token", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("token request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestAt := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request error: %w", err)
	}
	defer resp.Body.Close()
	if err := request.Error(resp); err != nil {
		return "", fmt.Errorf("token fetch error: %w", err)
	}

	var result struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expires_in"`
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&result); err != nil {
		return "", fmt.Errorf("token decode error: %w", err)
	}

	c.accessToken = result.Token
	c.expiresAt = requestAt.Add(time.Duration(result.ExpiresIn) * time.Second)
	return c.accessToken, nil
}
