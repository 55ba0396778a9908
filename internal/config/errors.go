package config

import "fmt"

// KeyNotFoundError is returned when a configuration key does not exist.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("could not find key %q", e.Key)
}

// Is matches any *KeyNotFoundError regardless of the key.
func (e *KeyNotFoundError) Is(target error) bool {
	_, ok := target.(*KeyNotFoundError)
	return ok
}

type InvalidConfigFileError struct {
	Path string
	Err  error
}

func (e *InvalidConfigFileError) Error() string {
	return fmt.Sprintf("invalid config file %s: %s", e.Path, e.Err)
}

func (e *InvalidConfigFileError) Unwrap() error {
	return e.Err
}
