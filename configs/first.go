package configs

import (
	"errors"
	"fmt"
)

// First returns the value at path from the first config file that sets it,
// or the zero value when none does.
func First[T any](loader Loader, path string) (value T) {
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return
}
