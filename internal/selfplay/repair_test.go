package selfplay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepairCSV(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		n, err := RepairCSV(filepath.Join(dir, "none.csv"), 3)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("complete file untouched", func(t *testing.T) {
		path := filepath.Join(dir, "ok.csv")
		body := "1,2,3\n4,5,6\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		n, err := RepairCSV(path, 3)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		got, _ := os.ReadFile(path)
		require.Equal(t, body, string(got))
	})

	t.Run("half written row truncated", func(t *testing.T) {
		path := filepath.Join(dir, "torn.csv")
		require.NoError(t, os.WriteFile(path, []byte("1,2,3\n4,5"), 0o644))

		n, err := RepairCSV(path, 3)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		got, _ := os.ReadFile(path)
		require.Equal(t, "1,2,3\n", string(got))
	})

	t.Run("short row in the middle cuts the rest", func(t *testing.T) {
		path := filepath.Join(dir, "mid.csv")
		require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{"1,2,3", "4,5", "7,8,9", ""}, "\n")), 0o644))

		n, err := RepairCSV(path, 3)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		got, _ := os.ReadFile(path)
		require.Equal(t, "1,2,3\n", string(got))
	})
}
