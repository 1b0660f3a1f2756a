package oraclient

import (
	"io"

	"golang.org/x/sync/errgroup"
)

// CloseAll releases a set of independently-owned statement/query handles
// concurrently (each backed by its own OCI statement handle, per spec.md
// §4.3) and returns the first error encountered, if any. Intended for
// callers tearing down a batch of prepared statements at shutdown rather
// than closing them one at a time.
func CloseAll(closers ...io.Closer) error {
	var g errgroup.Group
	for _, c := range closers {
		c := c
		g.Go(c.Close)
	}
	return g.Wait()
}
