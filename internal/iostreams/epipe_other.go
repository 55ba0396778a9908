//go:build !windows

package iostreams

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isEpipeError(err error) bool {
	return errors.Is(err, unix.EPIPE)
}
