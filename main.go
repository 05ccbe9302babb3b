// hot100 builds a sqlite3 database of Billboard year-end Hot 100 songs,
// then enriches it with per-song contributor credits and per-artist genre
// classifications pulled from external music databases.
//
// see db/schema.sql for info about the resulting database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: hot100 $cmd
valid $cmd are 'import', 'enrich', 'classify', 'run', 'report', 'serve'
for help: hot100 $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	// Credentials live in .env during development; a missing file just
	// means the environment is already set.
	_ = godotenv.Load()

	database, err := db.Open("hot100.db")
	if err != nil {
		return err
	}
	defer database.Close()

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "import":
		return importCharts(ctx, database, args)

	case "enrich":
		return enrichSongs(ctx, database, args)

	case "classify":
		return classifyArtists(ctx, database, args)

	case "run":
		return runWorkers(ctx, database, args)

	case "report":
		return report(ctx, database, args)

	case "serve":
		return serve(ctx, database, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
