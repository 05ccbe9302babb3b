// Package spotify is a client for the streaming service's metadata API,
// used as the algorithmic genre source. Auth is the client-credentials flow;
// the client respects the documented rate-limiter semantics, checking for a
// Retry-After header when it receives a 429 response.
package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hot100db/hot100/limiter"
	"github.com/hot100db/hot100/normalize"
	"github.com/hot100db/hot100/request"
)

// New creates a new client with the given clientID and clientSecret.
func New(clientID, clientSecret string) *Client {
	lim := limiter.New("spotify-next-req", 500*time.Millisecond)
	if err := lim.Load(); err != nil {
		log.Printf("ignoring unreadable spotify-next-req file: %v", err)
	}
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		lim:          lim,
	}
}

type Client struct {
	clientID     string
	clientSecret string
	lim          *limiter.Limiter

	accessToken string
	expiresAt   time.Time
}

// FetchArtistGenres searches for the artist by name and returns the genre
// labels of the best-followed exact-enough hit. No hit means no labels, not
// an error.
func (spo *Client) FetchArtistGenres(ctx context.Context, name string) ([]string, error) {
	query := url.Values{}
	query.Set("q", name)
	query.Set("type", "artist")
	query.Set("limit", "10")

	resp, err := spo.get(ctx, "https://api.spotify.com/v1/search", query)
	if err != nil {
		return nil, err
	}

	defer resp.Close()
	var results artistSearchResults
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("artist search decode error: %w", err)
	}

	want := strings.ToLower(normalize.Collapse(name))
	var genres []string
	var bestFollowers int64 = -1
	for _, item := range results.Artists.Items {
		if strings.ToLower(normalize.Collapse(item.Name)) != want {
			continue
		}
		if item.Followers.Total > bestFollowers {
			bestFollowers = item.Followers.Total
			genres = item.Genres
		}
	}
	return genres, nil
}

type artistSearchResults struct {
	Artists struct {
		Items []struct {
			ID        string   `json:"id"`
			Name      string   `json:"name"`
			Genres    []string `json:"genres"`
			Followers struct {
				Total int64 `json:"total"`
			} `json:"followers"`
		} `json:"items"`
	} `json:"artists"`
}

func (spo *Client) get(ctx context.Context, baseURL string, query url.Values) (io.ReadCloser, error) {
	for {
		if err := spo.lim.Wait(ctx); err != nil {
			return nil, err
		}

		u, _ := url.Parse(baseURL)
		u.RawQuery = query.Encode()
		req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("request error: %w", err)
		}

		token, err := spo.token()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", token)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request error: %w", err)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			retryAfter := resp.Header.Get("Retry-After")
			if retryAfter == "" {
				log.Printf("no retry-after header on 429; retrying in 1 minute")
			} else {
				log.Printf("429; retrying after %ss", retryAfter)
			}
			if err := spo.lim.Hold(retryAfter); err != nil {
				return nil, err
			}
			continue
		}
		if err := request.Error(resp); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch error: %w", err)
		}

		return resp.Body, nil
	}
}

type tokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (spo *Client) token() (string, error) {
	if spo.accessToken == "" || spo.expiresAt.Before(time.Now().Add(time.Second)) {
		if err := spo.fetchToken(); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Bearer %s", spo.accessToken), nil
}

func (spo *Client) fetchToken() error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	url := "https://accounts.spotify.com/api/token"
	req, err := http.NewRequest("POST", url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("token request error: %w", err)
	}
	up := fmt.Sprintf("%s:%s", spo.clientID, spo.clientSecret)
	credential := base64.StdEncoding.EncodeToString([]byte(up))
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", credential))
	req.Header.Set("Content-type", "application/x-www-form-urlencoded")

	requestAt := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("token request error: %w", err)
	}
	defer resp.Body.Close()
	if err := request.Error(resp); err != nil {
		return fmt.Errorf("token fetch error: %w", err)
	}

	var result tokenResult
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&result); err != nil {
		return fmt.Errorf("token decode error: %w", err)
	}

	spo.accessToken = result.AccessToken
	spo.expiresAt = requestAt.Add(time.Duration(result.ExpiresIn) * time.Second)

	return nil
}
