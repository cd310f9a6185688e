// Package config resolves command settings and loads the YAML configuration document.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/temirov/modparser/internal/utils"
)

// ErrConfigurationNotFound indicates the configuration document does not exist.
var ErrConfigurationNotFound = errors.New("configuration document not found")

// Document is the untyped configuration document. Value holds whatever the YAML decodes to:
// a mapping, a sequence, a scalar, or nil for an empty file.
type Document struct {
	Value any
}

// Mapping returns the top level as a mapping when it is one.
func (document Document) Mapping() (map[string]any, bool) {
	mapping, ok := document.Value.(map[string]any)
	return mapping, ok
}

// String renders the decoded value; mapping keys appear in sorted order.
func (document Document) String() string {
	return fmt.Sprint(document.Value)
}

// LoadOptions controls where the configuration document is read from.
type LoadOptions struct {
	WorkingDirectory string
	FilePath         string
}

// LoadDocument reads and decodes the configuration document.
// A relative FilePath is resolved against WorkingDirectory, which defaults to the process working directory.
//
// #nosec G304
func LoadDocument(options LoadOptions) (Document, error) {
	documentPath, resolveError := resolveDocumentPath(options)
	if resolveError != nil {
		return Document{}, resolveError
	}

	info, statError := os.Stat(documentPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return Document{}, fmt.Errorf("%w: %s", ErrConfigurationNotFound, documentPath)
		}
		return Document{}, fmt.Errorf("stat configuration %s: %w", documentPath, statError)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("configuration path %s is a directory", documentPath)
	}

	data, readError := os.ReadFile(documentPath)
	if readError != nil {
		return Document{}, fmt.Errorf("read configuration from %s: %w", documentPath, readError)
	}

	var raw any
	if unmarshalError := yaml.Unmarshal(data, &raw); unmarshalError != nil {
		return Document{}, fmt.Errorf("decode configuration from %s: %w", documentPath, unmarshalError)
	}

	return Document{Value: normalizeTopLevel(raw)}, nil
}

func resolveDocumentPath(options LoadOptions) (string, error) {
	filePath := options.FilePath
	if filePath == "" {
		filePath = utils.ConfigFileName
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}
	return filepath.Join(workingDirectory, filePath), nil
}

// normalizeTopLevel converts a top-level mapping with non-string keys to string keys.
func normalizeTopLevel(raw any) any {
	typed, ok := raw.(map[any]any)
	if !ok {
		return raw
	}
	mapping := make(map[string]any, len(typed))
	for key, value := range typed {
		mapping[fmt.Sprint(key)] = value
	}
	return mapping
}
