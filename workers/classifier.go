package workers

import (
	"context"
	"fmt"

	"github.com/hot100db/hot100/classify"
	"github.com/hot100db/hot100/db"
)

func runClassifier(ctx context.Context, c chan<- struct{}, database *db.DB, clients Clients) error {
	const batchSize = 25

	cls := classify.New(database)
	cls.Spotify = clients.Spotify
	cls.LastFM = clients.LastFM
	cls.Chartmetric = clients.Chartmetric
	cls.UseStored = true
	cls.Limit = batchSize

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("canceled: %w", err)
		}

		stats, err := cls.Run(ctx)
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
		if stats.Classified == 0 {
			return nil
		}
	}
}
