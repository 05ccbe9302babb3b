// Package workers runs the pipeline stages as a supervised set of
// long-lived workers. Each worker drains its own queue in batches and
// announces every finished batch; a batch from one stage can wake the
// stage downstream of it, so classification starts picking up artists
// while enrichment is still going.
package workers

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hot100db/hot100/chartmetric"
	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/genius"
	"github.com/hot100db/hot100/lastfm"
	"github.com/hot100db/hot100/spotify"
)

// Clients holds the external API clients the workers may use. Genius is
// required for the enrich worker; the rest are optional genre sources.
type Clients struct {
	Genius      *genius.Client
	Spotify     *spotify.Client
	LastFM      *lastfm.Client
	Chartmetric *chartmetric.Client
}

type worker struct {
	f         func(context.Context, chan<- struct{}) error
	isRunning bool
}

type engine struct {
	mu      sync.Mutex
	workers map[string]worker
}

func (eng *engine) add(name string, f func(context.Context, chan<- struct{}) error) {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	eng.workers[name] = worker{f: f}
}

func (eng *engine) start(ctx context.Context) error {
	ctx, cancel := context.WithCancelCause(ctx)

	g := new(errgroup.Group)
	events := make(chan string)

	run := func(name string) {
		worker := eng.workers[name]
		worker.isRunning = true
		f := worker.f
		eng.workers[name] = worker

		g.Go(func() error {
			theseEvents := make(chan struct{})
			go func() {
				for range theseEvents {
					events <- name
				}
			}()
			log.Printf("start:\t%s", name)
			err := f(ctx, theseEvents)
			if err != nil {
				log.Printf("error:\t%s\t%s", name, err)
				cancel(err)
			} else {
				log.Printf("done:\t%s", name)
			}
			go func() {
				eng.mu.Lock()
				defer eng.mu.Unlock()

				worker := eng.workers[name]
				worker.isRunning = false
				eng.workers[name] = worker
			}()
			return err
		})
	}

	func() {
		eng.mu.Lock()
		defer eng.mu.Unlock()

		for name := range eng.workers {
			run(name)
		}
	}()

	retrigger := func(name string) {
		eng.mu.Lock()
		defer eng.mu.Unlock()

		if _, ok := eng.workers[name]; !ok {
			return
		}
		if eng.workers[name].isRunning {
			return
		}

		run(name)
	}

	go func() {
		for ev := range events {
			log.Printf("batch:\t%s", ev)

			switch ev {
			case "enrich":
				// Freshly enriched songs may introduce artists the
				// classifier hasn't seen.
				retrigger("classify")
			}
		}
	}()

	g.Wait()

	return nil
}

// Run starts the named workers and blocks until every queue is drained or
// the context is canceled.
func Run(ctx context.Context, database *db.DB, clients Clients, names []string) error {
	eng := engine{
		workers: map[string]worker{},
	}

	for _, name := range names {
		switch name {
		case "enrich":
			if clients.Genius == nil {
				return fmt.Errorf("enrich worker requires a genius client")
			}
			eng.add("enrich", func(ctx context.Context, c chan<- struct{}) error {
				return runEnricher(ctx, c, database, clients.Genius)
			})
		case "classify":
			eng.add("classify", func(ctx context.Context, c chan<- struct{}) error {
				return runClassifier(ctx, c, database, clients)
			})
		default:
			return fmt.Errorf("unsupported worker '%s'", name)
		}
	}

	// The reporter lives outside the engine so a fully drained pipeline
	// actually returns instead of idling on the reporter's ticker.
	reporterCtx, stopReporter := context.WithCancel(context.WithoutCancel(ctx))
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		if err := runReporter(reporterCtx, database); err != nil {
			log.Printf("reporter error: %v", err)
		}
	}()

	err := eng.start(ctx)
	stopReporter()
	<-reporterDone
	return err
}
