package dom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Loader loads trusted raw content. Loaders are invoked lazily, when
// the element holding the content is rendered.
type Loader interface {
	Load(path string) (string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (string, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (string, error) {
	return f(path)
}

// FileLoader reads content from the file system.
var FileLoader Loader = LoaderFunc(loadFile)

func loadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return string(b), nil
}

// Content returns the trusted content of a raw element. Content with a
// source is loaded by the element's loader, otherwise the Text children are
// concatenated. Load errors wrap ErrNotFound or ErrIO.
func (e *Element) Content() (string, error) {
	if e.source == "" {
		var b strings.Builder
		for _, ch := range e.children {
			if t, ok := ch.(Text); ok {
				b.WriteString(string(t))
			}
		}
		return b.String(), nil
	}
	loader := e.loader
	if loader == nil {
		loader = FileLoader
	}
	content, err := loader.Load(e.source)
	if err != nil {
		tracer().Errorf("cannot load %s: %v", e.source, err)
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrIO) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return content, nil
}
