package client

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFormFlags(t *testing.T, args ...string) *FormFlags {
	t.Helper()
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	f := RegisterFormFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func writeLeakFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.txt")
	require.NoError(t, os.WriteFile(path, []byte("a@b.c:pw\n"), 0o600))
	return path
}

func TestFormFlags_LeakForm(t *testing.T) {
	path := writeLeakFile(t)
	f := parseFormFlags(t,
		"-context", "leak A",
		"-share-date", "2023-11-14",
		"-platforms", "tg, discord,",
		"-leakers", "x,y",
		"-file", path,
	)

	form, file, err := f.LeakForm(time.Now())
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, "leak A", form.Context)
	assert.Equal(t, time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC), form.ShareDate)
	assert.Equal(t, []string{"tg", "discord"}, form.Platforms)
	assert.Equal(t, []string{"x", "y"}, form.Leakers)
	assert.Equal(t, "dump.txt", form.FileName)

	data, err := io.ReadAll(form.File)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c:pw\n", string(data))
}

func TestFormFlags_DefaultShareDateIsToday(t *testing.T) {
	f := parseFormFlags(t, "-context", "leak A", "-file", writeLeakFile(t))
	now := time.Date(2026, 3, 7, 15, 4, 5, 0, time.UTC)

	form, file, err := f.LeakForm(now)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), form.ShareDate)
	assert.Empty(t, form.Platforms)
}

func TestFormFlags_Errors(t *testing.T) {
	_, _, err := parseFormFlags(t, "-context", "leak A").LeakForm(time.Now())
	assert.ErrorIs(t, err, ErrMissingLeakFile)

	_, _, err = parseFormFlags(t, "-file", writeLeakFile(t), "-share-date", "14/11/2023").LeakForm(time.Now())
	assert.ErrorIs(t, err, ErrInvalidShareDate)

	_, _, err = parseFormFlags(t, "-file", filepath.Join(t.TempDir(), "missing.txt")).LeakForm(time.Now())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
