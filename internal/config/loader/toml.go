package loader

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads configuration from TOML files.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a new TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{
		fs:   DefaultFS(),
		path: path,
	}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{
		fs:   fs,
		path: path,
	}
}

// Load decodes the configured file into v.
func (l *TOMLLoader) Load(v any) error {
	data, err := readOptional(l.fs, l.path)
	if err != nil || data == nil {
		return err
	}
	return l.parse(l.path, data, v)
}

// LoadFromReader decodes configuration from an io.Reader into v.
func (l *TOMLLoader) LoadFromReader(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return l.parse("<reader>", data, v)
}

func (l *TOMLLoader) parse(source string, data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		return &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}
