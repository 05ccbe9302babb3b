// Package limiter spaces outbound API calls with a fixed minimum delay and
// honors provider retry-after holds across process restarts by persisting
// the hold to a file.
package limiter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

func New(filename string, delay time.Duration) *Limiter {
	return &Limiter{
		filename: filename,
		delay:    delay,
	}
}

type Limiter struct {
	filename string
	delay    time.Duration
	nextAt   time.Time
}

// Load restores a persisted retry-after hold, if one was written by an
// earlier run.
func (lim *Limiter) Load() error {
	if _, err := os.Stat(lim.filename); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error statting file: %w", err)
	}

	bs, err := os.ReadFile(lim.filename)
	if err != nil {
		return err
	}

	lim.nextAt, err = time.Parse(time.UnixDate, string(bs))
	if err != nil {
		return err
	}

	return nil
}

// Wait blocks until the next call is allowed, then arms the fixed inter-call
// delay for the call that follows.
func (lim *Limiter) Wait(ctx context.Context) error {
	if !lim.nextAt.IsZero() {
		now := time.Now()
		if dur := lim.nextAt.Sub(now); dur > 0 {
			if dur > time.Second {
				log.Printf("waiting %s until %s",
					dur.Truncate(time.Second),
					lim.nextAt.Format(time.StampMilli))
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(dur):
			}
		}

		if err := os.Remove(lim.filename); err != nil &&
			!errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	lim.nextAt = time.Now().Add(lim.delay)
	return nil
}

// Hold parks the limiter until a provider's Retry-After expires, persisting
// the hold to disk so a restarted run keeps respecting it. An empty
// secondsStr means one minute.
func (lim *Limiter) Hold(secondsStr string) error {
	if secondsStr == "" {
		secondsStr = "60"
	}
	seconds, err := strconv.ParseInt(secondsStr, 10, 64)
	if err != nil {
		return err
	}
	lim.nextAt = time.Now().Add(time.Duration(seconds)*time.Second + time.Second)
	if err := os.WriteFile(lim.filename, []byte(lim.nextAt.Format(time.UnixDate)), 0666); err != nil {
		return err
	}
	return nil
}
