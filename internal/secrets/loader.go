package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret (session token, API key) comes from.
type Source struct {
	// Name gives error messages context about which secret failed to load.
	Name string
	// Value is an inline secret provided via configuration.
	Value string
	// File points to a file holding the secret. It takes precedence over
	// Value when set.
	File string
}

// Load resolves the secret from the source, trimmed of surrounding
// whitespace. An error is returned when neither File nor Value yields a
// usable value.
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

		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	secret := strings.TrimSpace(src.Value)
	if secret == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}

// Save writes the secret to the file with owner-only permissions. Used to
// persist the session token after a successful login.
func Save(path, secret string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("secret file path is required")
	}

	return os.WriteFile(path, []byte(strings.TrimSpace(secret)+"\n"), 0o600)
}
