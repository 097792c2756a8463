// Package persist provides the local key-value capability the config store
// writes through. Absence and failure are part of the contract, not errors:
// Get returns an Option and Set reports success as a bool, so callers can
// treat a missing or broken backing store as "no data" and move on.
package persist

import (
	"os"
	"path/filepath"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// EnvConfigPath overrides the directory file-backed stores write into.
const EnvConfigPath = "WALLCLOCK_CONFIG_PATH"

const appDirName = "wallclock"

// KV is a fallible local key-value store.
type KV interface {
	Get(key string) mo.Option[[]byte]
	Set(key string, value []byte) bool
}

// FileKV keeps each key as one JSON file in a directory. The filesystem is
// injected (afero) so tests run against memfs.
type FileKV struct {
	fs  afero.Afero
	dir string
	log *logrus.Entry
}

func NewFileKV(fs afero.Fs, dir string) *FileKV {
	return &FileKV{
		fs:  afero.Afero{Fs: fs},
		dir: dir,
		log: logrus.WithField("component", "persist"),
	}
}

// DefaultDir resolves the config directory: WALLCLOCK_CONFIG_PATH if set,
// else the platform user config dir, else the working directory. It never
// fails; a store pointed at an unusable directory degrades to no-ops.
func DefaultDir() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return custom
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(base, appDirName)
}

func (kv *FileKV) Get(key string) mo.Option[[]byte] {
	raw, err := kv.fs.ReadFile(kv.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			kv.log.WithError(err).Debug("kv read failed")
		}
		return mo.None[[]byte]()
	}
	return mo.Some(raw)
}

func (kv *FileKV) Set(key string, value []byte) bool {
	if err := kv.fs.MkdirAll(kv.dir, 0o755); err != nil {
		kv.log.WithError(err).Debug("kv mkdir failed")
		return false
	}
	if err := kv.fs.WriteFile(kv.path(key), value, 0o644); err != nil {
		kv.log.WithError(err).Debug("kv write failed")
		return false
	}
	return true
}

func (kv *FileKV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}

// NullKV ignores writes and holds nothing. It stands in when the device has
// no writable storage at all.
type NullKV struct{}

func (NullKV) Get(string) mo.Option[[]byte] { return mo.None[[]byte]() }
func (NullKV) Set(string, []byte) bool      { return false }
