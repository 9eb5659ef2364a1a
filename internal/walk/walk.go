// Package walk scores the paths below a directory against a query.
package walk

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/abenz1267/stringscore/pkg/score"
	"github.com/charlievieth/fastwalk"
)

const name = "walk"

// Match is a path that matched the query.
type Match struct {
	// Path is relative to the walked root, with forward slashes.
	Path  string
	Score float32
}

// Paths walks root and calls fn for every path scoring above 0 and at
// least minScore. Paths are delivered in walk order, fn is never called
// concurrently. An error returned by fn stops the walk.
func Paths(ctx context.Context, root, query string, scorer score.Scorer, minScore float32, fn func(Match) error) error {
	start := time.Now()

	conf := fastwalk.Config{
		Follow: true,
	}

	var (
		mut     sync.Mutex
		scanned int
		matched int
		stopped error
	)

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug(name, "skip", path, "err", err)
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}

		rel = filepath.ToSlash(rel)
		s := scorer.Score(rel, query)

		mut.Lock()
		defer mut.Unlock()

		if stopped != nil {
			return stopped
		}

		scanned++

		if s <= 0 || s < minScore {
			return nil
		}

		matched++

		stopped = fn(Match{Path: rel, Score: s})

		return stopped
	}

	if err := fastwalk.Walk(&conf, root, walkFn); err != nil {
		return err
	}

	slog.Info(name, "scanned", scanned, "matched", matched, "time", time.Since(start))

	return nil
}
