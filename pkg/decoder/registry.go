package decoder

import (
	"fmt"
	"sort"
	"sync"
)

// Builder creates a Decoder that writes the given Output.
type Builder func(out Output) (Decoder, error)

type key struct {
	format  Format
	library string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[key]Builder)
)

// Register makes a library's decoder for format available to NewDecoder.
// Registering the same pair twice panics.
func Register(format Format, library string, b Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()

	k := key{format, library}
	if _, dup := registry[k]; dup {
		panic(fmt.Sprintf("decoder: %s decoder for %s registered twice", library, format))
	}
	registry[k] = b
}

// NewDecoder builds the decoder that library provides for format.
func NewDecoder(format Format, library string, out Output) (Decoder, error) {
	registryMu.RLock()
	b, ok := registry[key{format, library}]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s decoder", ErrUnknownLibrary, library, format)
	}

	d, err := b(out)
	if err != nil {
		return nil, fmt.Errorf("%s %s decoder: %w", library, format, err)
	}
	return d, nil
}

// Libraries lists the libraries registered for format, sorted.
func Libraries(format Format) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var libs []string
	for k := range registry {
		if k.format == format {
			libs = append(libs, k.library)
		}
	}
	sort.Strings(libs)
	return libs
}

func unsupported(out Output, format Format) error {
	return fmt.Errorf("%w: %s for %s", ErrUnsupportedOutput, out, format)
}
