package workers_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/workers"
)

func TestRunReturnsWhenQueuesDrain(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	database, err := db.Open("test.db")
	assert.NoError(t, err)
	defer database.Close()

	done := make(chan error, 1)
	go func() {
		done <- workers.Run(context.Background(), database, workers.Clients{}, []string{"classify"})
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after its queues drained")
	}

	// The reporter leaves a final snapshot behind.
	_, err = os.Stat("log.tsv")
	assert.NoError(t, err)
}
