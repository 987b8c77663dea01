package configs

import (
	"errors"
	"fmt"
)

// First returns the zero value when no file defines path. A value that does not decode into T
// panics with the path in the message; the schema should have caught it.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}
