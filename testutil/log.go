package testutil

import (
	"bytes"
	"log"
	"os"
	"testing"
)

// CollectLogs redirects output emitted with the [log] package into a buffer
// for the remainder of the test and returns it.
func CollectLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetFlags(0)
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
	})
	return &buf
}
