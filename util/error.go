package util

import (
	"fmt"
	"os"
)

var (
	errNotFound     = fmt.Errorf("not found")
	errAccessDenied = fmt.Errorf("access denied")
)

// SimplifyIOError replaces "file does not exist" and "permission denied" errors with simpler, constant ones.
func SimplifyIOError(err error) error {
	switch {
	case os.IsNotExist(err):
		return errNotFound
	case os.IsPermission(err):
		return errAccessDenied
	}
	return err
}
