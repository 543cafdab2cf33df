package util

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test__simplify_io_error_replaces_not_exist(t *testing.T) {
	_, err := os.Stat("does/not/exist")
	assert.EqualError(t, SimplifyIOError(err), "not found")
}

func Test__simplify_io_error_passes_other_errors_through(t *testing.T) {
	err := fmt.Errorf("some other error")
	assert.Same(t, err, SimplifyIOError(err))
}

func Test__file_mode_name_from_path(t *testing.T) {
	assert.Equal(t, "directory", FileModeNameFromPath(t.TempDir()))
	assert.Equal(t, "file or directory (stat failed)", FileModeNameFromPath("does/not/exist"))
}
