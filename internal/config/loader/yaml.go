package loader

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads configuration from YAML files.
type YAMLLoader struct {
	fs   FileSystem
	path string
}

// NewYAMLLoader creates a new YAML loader for the given path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{
		fs:   DefaultFS(),
		path: path,
	}
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem, path string) *YAMLLoader {
	return &YAMLLoader{
		fs:   fs,
		path: path,
	}
}

// Load decodes the configured file into v.
func (l *YAMLLoader) Load(v any) error {
	data, err := readOptional(l.fs, l.path)
	if err != nil || data == nil {
		return err
	}
	return l.parse(l.path, data, v)
}

// LoadFromReader decodes configuration from an io.Reader into v.
func (l *YAMLLoader) LoadFromReader(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return l.parse("<reader>", data, v)
}

func (l *YAMLLoader) parse(source string, data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}
