package resguard

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ io.Closer = (*Typed[int, DeleterFunc[int]])(nil)

// reportDeleter is a stateless cleanup policy recording its invocations in a
// package-level buffer, mirroring how a real default deleter would reach its
// target (syscall, registry, etc.) without carrying state.
type reportDeleter struct{}

var reportDeleterOut strings.Builder

func (reportDeleter) Delete(i int) error {
	fmt.Fprintf(&reportDeleterOut, "cleaned %d", i)
	return nil
}

type intGuard = Typed[int, reportDeleter]

func Test__typed_guard_cleans_with_zero_value_deleter(t *testing.T) {
	reportDeleterOut.Reset()
	func() {
		g := Make[int, reportDeleter](42)
		defer g.Close()
		assert.Equal(t, 42, g.Get())
	}()
	assert.Equal(t, "cleaned 42", reportDeleterOut.String())
}

func Test__zero_value_typed_guard_is_non_owning_noop(t *testing.T) {
	reportDeleterOut.Reset()
	func() {
		var g intGuard
		defer g.Close()
		assert.False(t, g.Valid())
	}()
	assert.Empty(t, reportDeleterOut.String())
}

func Test__typed_guard_valid_tracks_ownership(t *testing.T) {
	reportDeleterOut.Reset()
	g := Make[int, reportDeleter](1337)
	assert.True(t, g.Valid())
	require.NoError(t, g.Reset())
	assert.False(t, g.Valid())
	assert.Equal(t, "cleaned 1337", reportDeleterOut.String())

	// Nothing left to clean.
	require.NoError(t, g.Close())
	assert.Equal(t, "cleaned 1337", reportDeleterOut.String())
}

func Test__typed_guard_release_suppresses_cleanup(t *testing.T) {
	reportDeleterOut.Reset()
	g := Make[int, reportDeleter](5)
	assert.Equal(t, 5, g.Release())
	require.NoError(t, g.Close())
	assert.Empty(t, reportDeleterOut.String())
}

func Test__typed_guard_reset_to_cleans_old_value(t *testing.T) {
	reportDeleterOut.Reset()
	g := Make[int, reportDeleter](1)
	require.NoError(t, g.ResetTo(2))
	require.NoError(t, g.Close())
	assert.Equal(t, "cleaned 1cleaned 2", reportDeleterOut.String())
}

func Test__typed_guard_move_and_adopt_transfer_ownership(t *testing.T) {
	reportDeleterOut.Reset()
	g := Make[int, reportDeleter](1)
	m := g.Move()
	assert.False(t, g.Valid())
	assert.True(t, m.Valid())

	var g2 intGuard
	require.NoError(t, g2.Adopt(m))
	assert.False(t, m.Valid())

	require.NoError(t, g.Close())
	require.NoError(t, m.Close())
	assert.Empty(t, reportDeleterOut.String())
	require.NoError(t, g2.Close())
	assert.Equal(t, "cleaned 1", reportDeleterOut.String())
}

func Test__deleter_func_adapts_plain_function(t *testing.T) {
	var got []string
	d := DeleterFunc[string](func(s string) error {
		got = append(got, s)
		return nil
	})
	// The zero value of a func-typed deleter is nil, so it must be passed
	// explicitly.
	g := MakeWith("x", d)
	require.NoError(t, g.Close())
	assert.Equal(t, []string{"x"}, got)
}
