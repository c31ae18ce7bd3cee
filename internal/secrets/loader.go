package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret comes from. File wins over Value.
type Source struct {
	// Name only appears in error messages.
	Name  string
	Value string
	File  string
}

// Load resolves a secret and trims surrounding whitespace. Neither a File nor
// a Value holding a usable secret is an error.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}

		src.Value = string(data)
	}

	secret := strings.TrimSpace(src.Value)
	if secret == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}

		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}

// LoadOptional is Load for secrets that may be left unset.
func LoadOptional(src Source) (string, error) {
	if strings.TrimSpace(src.File) == "" && strings.TrimSpace(src.Value) == "" {
		return "", nil
	}

	return Load(src)
}
