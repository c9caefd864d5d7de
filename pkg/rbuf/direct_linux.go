package rbuf

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func openDirect(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|unix.O_DIRECT, 0)
	if errors.Is(err, unix.EINVAL) {
		// Filesystems such as tmpfs refuse O_DIRECT.
		return os.Open(path)
	}
	return f, err
}
