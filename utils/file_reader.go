package utils

import (
	"errors"
	"fmt"
	"os"
)

var ErrEmptyConfigFile = errors.New("config file is empty")

// GetConfigFile returns the content of a config file. A file without content is an error so that a
// wrong path to an empty file is not mistaken for a config with every default.
func GetConfigFile(filepath string) ([]byte, error) {
	configFileBytes, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", filepath, err)
	}

	if len(configFileBytes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyConfigFile, filepath)
	}

	return configFileBytes, nil
}
