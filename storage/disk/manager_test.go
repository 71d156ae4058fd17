package disk

import (
	"path/filepath"
	"testing"

	"github.com/karthikeyaspace/venus-db/config"
	"github.com/stretchr/testify/require"
)

func TestOpenColdOnNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cold.db")
	m, wasCold, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	require.True(t, wasCold)
	require.Equal(t, config.FirstUsablePage, m.AllocatePage())
}

func TestWriteThenReadPageRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rw.db")
	m, _, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	buf := make([]byte, config.PageSize)
	for i := range buf {
		buf[i] = byte(i)
	}

	require.NoError(t, m.WritePage(3, buf))

	out := make([]byte, config.PageSize)
	require.NoError(t, m.ReadPage(3, out))
	require.Equal(t, buf, out)
}

func TestOpenWarmAfterReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warm.db")
	m, _, err := Open(path)
	require.NoError(t, err)

	buf := make([]byte, config.PageSize)
	require.NoError(t, m.WritePage(0, buf))
	require.NoError(t, m.WritePage(1, buf))
	require.NoError(t, m.Close())

	m2, wasCold, err := Open(path)
	require.NoError(t, err)
	defer m2.Close()
	require.False(t, wasCold)
}

func TestAllocatePageMonotonic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alloc.db")
	m, _, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	a := m.AllocatePage()
	b := m.AllocatePage()
	require.Equal(t, a+1, b)
}
