//go:build !linux && !darwin

package rbuf

import "os"

func openDirect(path string) (*os.File, error) {
	return os.Open(path)
}
