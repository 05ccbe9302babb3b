package main

import (
	"context"
	"fmt"

	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/server"
	"github.com/hot100db/hot100/subcmd"
)

func serve(ctx context.Context, database *db.DB, args []string) error {
	subcmd := subcmd.New("serve", "run a read-only web server over the database")
	var (
		port = subcmd.Int("port", 9999, "http port")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	addr := fmt.Sprintf(":%d", *port)
	return server.Run(ctx, database, addr)
}
