// Package server exposes the database over a small read-only JSON API, for
// poking at a populated database without opening sqlite by hand.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/hot100db/hot100/data"
	"github.com/hot100db/hot100/db"
)

// Run serves until the context is canceled or the listener fails.
func Run(ctx context.Context, database *db.DB, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handleProgress(database))
	mux.HandleFunc("GET /songs/{id}", handleSong(database))
	mux.HandleFunc("GET /artists/{name}", handleArtist(database))

	srv := http.Server{Addr: addr, Handler: mux}

	log.Printf("serving on %s", addr)

	errs := make(chan error)
	go func() { errs <- srv.ListenAndServe() }()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		return <-errs
	}
}

func handleProgress(database *db.DB) http.HandlerFunc {
	type counts struct {
		Songs             int `json:"songs"`
		SongsEnriched     int `json:"songs_enriched"`
		Artists           int `json:"artists"`
		ArtistsClassified int `json:"artists_classified"`
		Credits           int `json:"credits"`
		SubgenreTags      int `json:"subgenre_tags"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		var c counts
		var err error
		if c.Songs, err = database.CountSongs(); err != nil {
			serverError(w, err)
			return
		}
		if c.SongsEnriched, err = database.CountSongsEnriched(); err != nil {
			serverError(w, err)
			return
		}
		if c.Artists, err = database.CountArtists(); err != nil {
			serverError(w, err)
			return
		}
		if c.ArtistsClassified, err = database.CountArtistsClassified(); err != nil {
			serverError(w, err)
			return
		}
		if c.Credits, err = database.CountCredits(); err != nil {
			serverError(w, err)
			return
		}
		if c.SubgenreTags, err = database.CountSubgenreTags(); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, c)
	}
}

func handleSong(database *db.DB) http.HandlerFunc {
	type response struct {
		Song      data.Song          `json:"song"`
		Credits   []data.Credit      `json:"credits"`
		Subgenres []data.SubgenreTag `json:"subgenres"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		id, err := strconv.ParseInt(req.PathValue("id"), 10, 64)
		if err != nil {
			http.Error(w, "bad song id", http.StatusBadRequest)
			return
		}

		var resp response
		resp.Song, err = database.SongByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, req)
			return
		} else if err != nil {
			serverError(w, err)
			return
		}
		if resp.Credits, err = database.SongCredits(id); err != nil {
			serverError(w, err)
			return
		}
		if resp.Subgenres, err = database.SongSubgenres(id); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, resp)
	}
}

func handleArtist(database *db.DB) http.HandlerFunc {
	type response struct {
		Artist     data.Artist           `json:"artist"`
		Assignment *data.GenreAssignment `json:"genre,omitempty"`
		Songs      []data.Song           `json:"songs"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		name := req.PathValue("name")

		var resp response
		artist, err := database.ArtistByName(name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, req)
			return
		} else if err != nil {
			serverError(w, err)
			return
		}
		resp.Artist = artist

		assignment, ok, err := database.ArtistAssignment(artist.ID)
		if err != nil {
			serverError(w, err)
			return
		}
		if ok {
			resp.Assignment = &assignment
		}

		if resp.Songs, err = database.SongsByArtist(artist.Name); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, resp)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

func serverError(w http.ResponseWriter, err error) {
	log.Printf("server error: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
