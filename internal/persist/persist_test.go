package persist

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVRoundTrip(t *testing.T) {
	kv := NewFileKV(afero.NewMemMapFs(), "/data/wallclock")

	assert.True(t, kv.Set("wall-clock-config", []byte(`{"fontSize":20}`)))

	raw, ok := kv.Get("wall-clock-config").Get()
	require.True(t, ok)
	assert.Equal(t, `{"fontSize":20}`, string(raw))
}

func TestFileKVGetAbsentKey(t *testing.T) {
	kv := NewFileKV(afero.NewMemMapFs(), "/data/wallclock")
	assert.True(t, kv.Get("nothing").IsAbsent())
}

func TestFileKVSetCreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	kv := NewFileKV(fs, "/deep/nested/dir")

	require.True(t, kv.Set("k", []byte("v")))

	raw, err := afero.ReadFile(fs, "/deep/nested/dir/k.json")
	require.NoError(t, err)
	assert.Equal(t, "v", string(raw))
}

func TestFileKVSetOnReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	kv := NewFileKV(fs, "/data")
	assert.False(t, kv.Set("k", []byte("v")))
}

func TestFileKVOverwrite(t *testing.T) {
	kv := NewFileKV(afero.NewMemMapFs(), "/data")
	require.True(t, kv.Set("k", []byte("one")))
	require.True(t, kv.Set("k", []byte("two")))

	raw, ok := kv.Get("k").Get()
	require.True(t, ok)
	assert.Equal(t, "two", string(raw))
}

func TestNullKV(t *testing.T) {
	kv := NullKV{}
	assert.False(t, kv.Set("k", []byte("v")))
	assert.True(t, kv.Get("k").IsAbsent())
}

func TestDefaultDirHonorsEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/custom/cfg")
	assert.Equal(t, "/custom/cfg", DefaultDir())
}
