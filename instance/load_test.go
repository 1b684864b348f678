package instance

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pathInstance = "2 1\n0 1\n1 2\n2 3\n"

func checkLoaded(t *testing.T, inst *Instance) {
	t.Helper()
	assert.Equal(t, 2, inst.N)
	assert.Equal(t, 1, inst.K)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 3}}, inst.Edges)
}

func TestLoadPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.txt")
	require.NoError(t, os.WriteFile(path, []byte(pathInstance), 0o644))
	inst, err := Load(path)
	require.NoError(t, err)
	checkLoaded(t, inst)
}

func TestLoadBzip2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.txt.bz2")
	f, err := os.Create(path)
	require.NoError(t, err)
	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	require.NoError(t, err)
	_, err = bz.Write([]byte(pathInstance))
	require.NoError(t, err)
	require.NoError(t, bz.Close())
	require.NoError(t, f.Close())

	inst, err := Load(path)
	require.NoError(t, err)
	checkLoaded(t, inst)
}

func TestLoadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(pathInstance))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	inst, err := Load(path)
	require.NoError(t, err)
	checkLoaded(t, inst)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadParseErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an instance\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt")
}
