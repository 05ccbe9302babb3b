package workers

import (
	"context"
	"fmt"

	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/enrich"
	"github.com/hot100db/hot100/genius"
)

func runEnricher(ctx context.Context, c chan<- struct{}, database *db.DB, gen *genius.Client) error {
	const batchSize = 50

	e := enrich.New(database, gen)
	e.Limit = batchSize

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("canceled: %w", err)
		}

		stats, err := e.Run(ctx)
		if err != nil {
			return err
		}
		if stats.Attempted == 0 {
			return nil
		}

		c <- struct{}{}

		if stats.Attempted < batchSize {
			return nil
		}
		if stats.Enriched == 0 {
			// Every remaining song failed or went unmatched; rerunning
			// would just hammer the same queue.
			return nil
		}
	}
}
