// Package zio defines the writers that serialize blocks for output.
package zio

import (
	"io"

	"github.com/brimdata/blockflow/vector"
)

type Writer interface {
	Write(*vector.Block) error
}

type WriteCloser interface {
	Writer
	io.Closer
}

func NopCloser(w io.Writer) io.WriteCloser {
	return &nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (*nopCloser) Close() error {
	return nil
}
