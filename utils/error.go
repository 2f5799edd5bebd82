package utils

import (
	"io"

	"github.com/hashicorp/go-multierror"
)

// CloseAll closes the given closers in order, accumulating every error
// rather than stopping on the first.
func CloseAll(closers ...io.Closer) error {
	var multErr error
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			multErr = multierror.Append(multErr, err)
		}
	}
	return multErr
}
