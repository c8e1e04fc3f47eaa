package environment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/subosito/gotenv"
)

// Snapshot is a read-only view of environment variables.
// The zero value is an empty snapshot.
type Snapshot struct {
	vars map[string]string
}

// FromMap returns a snapshot holding a copy of m.
func FromMap(m map[string]string) Snapshot {
	vars := make(map[string]string, len(m))
	for k, v := range m {
		vars[k] = v
	}
	return Snapshot{vars: vars}
}

// FromEnviron builds a snapshot from KEY=VALUE pairs as returned by os.Environ.
// Entries without "=" are ignored.
func FromEnviron(environ []string) Snapshot {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}
		vars[key] = value
	}
	return Snapshot{vars: vars}
}

// Load builds a snapshot from environ overlaid on the given .env files.
// Files are applied in order, later files overriding earlier ones. Values
// already present in environ always win over file values, so a variable
// exported in the shell is never replaced by a dotfile.
func Load(fs afero.Fs, environ []string, files ...string) (Snapshot, error) {
	vars := make(map[string]string)
	for _, path := range files {
		entries, err := readEnvFile(fs, path)
		if err != nil {
			return Snapshot{}, err
		}
		for k, v := range entries {
			vars[k] = v
		}
	}
	for k, v := range FromEnviron(environ).vars {
		vars[k] = v
	}
	return Snapshot{vars: vars}, nil
}

func readEnvFile(fs afero.Fs, path string) (gotenv.Env, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	entries, err := gotenv.StrictParse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing env file %s: %w", path, err)
	}
	return entries, nil
}

// Lookup returns the value of key and whether it is set.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Get returns the value of key, or "" when unset.
func (s Snapshot) Get(key string) string {
	return s.vars[key]
}

// Len returns the number of variables in the snapshot.
func (s Snapshot) Len() int {
	return len(s.vars)
}

// Keys returns all variable names in sorted order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithPrefix returns the sorted names of variables starting with prefix.
func (s Snapshot) WithPrefix(prefix string) []string {
	var keys []string
	for _, k := range s.Keys() {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}
