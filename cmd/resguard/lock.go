package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/bisgardo/resguard"
	"github.com/bisgardo/resguard/util"
)

// Lock runs the "lock" command to execute the provided command while holding
// an exclusive lock file at the provided path. The lock is taken by creating
// the file, failing if it already exists, and is removed again when the
// command completes on any path. The file holds the PID of the locking
// process to ease debugging of stale locks.
func Lock(path string, args []string) error {
	if len(args) == 0 {
		return errors.New("no command provided")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Errorf("lock %q is already held (found existing %v)", path, util.FileModeNameFromPath(path))
		}
		return errors.Wrap(util.SimplifyIOError(err), "cannot create lock file")
	}
	g := resguard.New(path, os.Remove)
	defer func() {
		if err := g.Close(); err != nil {
			log.Printf("error: cannot remove lock file %q: %v\n", path, err)
		}
	}()

	_, err = fmt.Fprintf(f, "%d\n", os.Getpid())
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, "cannot write lock file")
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return errors.Wrapf(cmd.Run(), "command %q failed", args[0])
}
