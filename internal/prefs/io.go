package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Open loads the store backed by path. A missing file is not an error: the
// store starts empty and the file is created on the first write.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("preferences path required")
	}
	path = filepath.Clean(path)

	s := &Store{path: path, values: make(map[Key]Value)}
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("preferences path is a directory: %s", path)
	}

	raw := map[string]any{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range raw {
		val, err := decodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, k, err)
		}
		s.values[Key(k)] = val
	}
	return s, nil
}

func decodeValue(v any) (Value, error) {
	switch t := v.(type) {
	case string:
		return Text(t), nil
	case int64, float64, bool:
		// Hand-edited files may use bare numbers, e.g. email_port = 587.
		return Text(fmt.Sprint(t)), nil
	case []any:
		members := make([]string, 0, len(t))
		for _, m := range t {
			s, ok := m.(string)
			if !ok {
				return Value{}, fmt.Errorf("set member %v is not a string", m)
			}
			members = append(members, s)
		}
		return StringSet(members...), nil
	}
	return Value{}, fmt.Errorf("unsupported value type %T", v)
}

func save(path string, values map[Key]Value) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".email.toml.*")
	if err != nil {
		return err
	}
	tmpPath := filepath.Clean(tmp.Name())
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	out := make(map[string]any, len(values))
	for k, v := range values {
		out[string(k)] = v.encode()
	}
	if err := toml.NewEncoder(tmp).Encode(out); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// #nosec G703 -- path is sanitized via filepath.Clean in Open.
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	return os.Chmod(path, 0o600)
}
