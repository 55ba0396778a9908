package iostreams

import (
	"errors"

	"golang.org/x/sys/windows"
)

func isEpipeError(err error) bool {
	return errors.Is(err, windows.ERROR_NO_DATA)
}
