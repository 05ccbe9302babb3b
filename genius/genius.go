// Package genius is a client for the lyrics-metadata provider used for
// candidate search and credit extraction.
package genius

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hot100db/hot100/limiter"
	"github.com/hot100db/hot100/match"
	"github.com/hot100db/hot100/request"
)

const baseURL = "https://api.genius.com"

// ErrUnavailable marks a network or API failure during search. Callers treat
// it as "zero candidates", not as a reason to stop the batch.
var ErrUnavailable = errors.New("search unavailable")

// New creates a client with the given bearer token.
func New(accessToken string) *Client {
	lim := limiter.New("genius-next-req", 500*time.Millisecond)
	if err := lim.Load(); err != nil {
		log.Printf("ignoring unreadable genius-next-req file: %v", err)
	}
	return &Client{
		accessToken: accessToken,
		lim:         lim,
	}
}

type Client struct {
	accessToken string
	lim         *limiter.Limiter
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	for {
		if err := c.lim.Wait(ctx); err != nil {
			return nil, err
		}

		u, _ := url.Parse(baseURL + path)
		u.RawQuery = query.Encode()
		req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("request error: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.accessToken)

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
		return resp, nil
	}
}

// Search queries the provider and returns up to limit candidates in the
// API's native relevance order. Any failure is reported as ErrUnavailable.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]match.Candidate, error) {
	q := url.Values{}
	q.Set("q", query)

	resp, err := c.get(ctx, "/search", q)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var results searchResults
	if err := request.DecodeJSON(resp, &results); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var candidates []match.Candidate
	for _, hit := range results.Response.Hits {
		if hit.Type != "" && hit.Type != "song" {
			continue
		}
		candidates = append(candidates, match.Candidate{
			ID:     hit.Result.ID,
			Title:  hit.Result.Title,
			Artist: hit.Result.PrimaryArtist.Name,
		})
		if len(candidates) == limit {
			break
		}
	}
	return candidates, nil
}

type searchResults struct {
	Response struct {
		Hits []struct {
			Type   string `json:"type"`
			Result struct {
				ID            int64  `json:"id"`
				Title         string `json:"title"`
				PrimaryArtist struct {
					Name string `json:"name"`
				} `json:"primary_artist"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// A Contributor is one person attached to a song, with the provider's raw
// role label.
type Contributor struct {
	Name      string
	RawRole   string
	IsPrimary bool
}

// A Song is the provider's full record for one matched song: its
// contributors and its raw genre tags.
type Song struct {
	ID           int64
	Title        string
	Artist       string
	Contributors []Contributor
	Tags         []string
}

// FetchSong fetches the full song record for an accepted match.
func (c *Client) FetchSong(ctx context.Context, id int64) (*Song, error) {
	q := url.Values{}
	q.Set("text_format", "plain")

	resp, err := c.get(ctx, "/songs/"+strconv.FormatInt(id, 10), q)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var results songResult
	if err := request.DecodeJSON(resp, &results); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	fetched := results.Response.Song
	song := &Song{
		ID:     fetched.ID,
		Title:  fetched.Title,
		Artist: fetched.PrimaryArtist.Name,
	}

	song.Contributors = append(song.Contributors, Contributor{
		Name:      fetched.PrimaryArtist.Name,
		RawRole:   "artist",
		IsPrimary: true,
	})
	for _, artist := range fetched.FeaturedArtists {
		song.Contributors = append(song.Contributors, Contributor{
			Name:    artist.Name,
			RawRole: "featured artist",
		})
	}
	for _, artist := range fetched.WriterArtists {
		song.Contributors = append(song.Contributors, Contributor{
			Name:    artist.Name,
			RawRole: "writer",
		})
	}
	for _, artist := range fetched.ProducerArtists {
		song.Contributors = append(song.Contributors, Contributor{
			Name:    artist.Name,
			RawRole: "producer",
		})
	}
	for _, performance := range fetched.CustomPerformances {
		for _, artist := range performance.Artists {
			song.Contributors = append(song.Contributors, Contributor{
				Name:    artist.Name,
				RawRole: performance.Label,
			})
		}
	}

	for _, tag := range fetched.Tags {
		if tag.Name != "" {
			song.Tags = append(song.Tags, tag.Name)
		}
	}

	return song, nil
}

type songResult struct {
	Response struct {
		Song struct {
			ID            int64  `json:"id"`
			Title         string `json:"title"`
			PrimaryArtist struct {
				Name string `json:"name"`
			} `json:"primary_artist"`
			FeaturedArtists []struct {
				Name string `json:"name"`
			} `json:"featured_artists"`
			WriterArtists []struct {
				Name string `json:"name"`
			} `json:"writer_artists"`
			ProducerArtists []struct {
				Name string `json:"name"`
			} `json:"producer_artists"`
			CustomPerformances []struct {
				Label   string `json:"label"`
				Artists []struct {
					Name string `json:"name"`
				} `json:"artists"`
			} `json:"custom_performances"`
			Tags []struct {
				Name string `json:"name"`
			} `json:"tags"`
		} `json:"song"`
	} `json:"response"`
}
