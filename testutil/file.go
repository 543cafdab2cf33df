package testutil

import (
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// TempStringFile writes contents to a fresh file in a temporary directory
// that is cleaned up when the test completes and returns the file's path.
func TempStringFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// MakeInaccessible makes the file or directory at the provided path
// non-readable to the user running the test.
// On Unix this just zeroes out the permission bits.
// On Windows, Chmod can only control the "write" flag (https://golang.org/pkg/os/#Chmod),
// so 'icacls' is invoked to deny read access instead
// (https://learn.microsoft.com/en-us/windows-server/administration/windows-commands/icacls).
// The function is only intended to be used on temporary files and directories
// that get deleted as part of cleaning up after the test;
// testing.T.TempDir() is able to clean up such entries without reverting the change first.
func MakeInaccessible(path string) error {
	//goland:noinspection GoBoolExpressions
	if runtime.GOOS == "windows" {
		u, err := user.Current()
		if err != nil {
			return errors.Wrapf(err, "cannot resolve current Windows user")
		}
		cmd := exec.Command("icacls", path, "/deny", u.Username+":r")
		out, err := cmd.CombinedOutput()
		return errors.Wrapf(err, string(out))
	}

	// Not Windows.
	return os.Chmod(path, 0)
}

// MakeInaccessibleT calls MakeInaccessible and fails the test on error.
func MakeInaccessibleT(t T, path string) {
	t.Helper()
	require.NoError(t, MakeInaccessible(path))
}
