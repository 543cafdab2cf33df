package main

import (
	"log"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/bisgardo/resguard"
	"github.com/bisgardo/resguard/util"
)

// Run runs the "run" command to execute the provided command in a fresh
// temporary work directory created under baseDir (or the system default
// location if baseDir is empty). The directory is removed again when the
// command completes, whether it succeeded or not; failure to remove it is
// only logged. If keep is set, the directory survives instead and its path
// is returned.
func Run(baseDir string, keep bool, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("no command provided")
	}

	// MkdirTemp returns the empty string on failure, so the guard can be set
	// up before the error check without any risk of "removing" the result of
	// a failed creation.
	dir, err := os.MkdirTemp(baseDir, "resguard-")
	g := resguard.NewChecked(dir, "", os.RemoveAll)
	defer func() {
		if err := g.Close(); err != nil {
			log.Printf("error: cannot remove work directory %q: %v\n", dir, err)
		}
	}()
	if err != nil {
		return "", errors.Wrap(util.SimplifyIOError(err), "cannot create work directory")
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = g.Get()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "command %q failed in work directory %q", args[0], dir)
	}
	if keep {
		return g.Release(), nil
	}
	return "", nil
}
