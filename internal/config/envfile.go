package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// EnvFileName is the env file read from the configuration directory.
const EnvFileName = "env"

// LoadEnvFile reads a KEY=VALUE file and sets any variables not already in the
// environment. It returns the keys it applied. A missing file is not an error.
func LoadEnvFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from the config dir resolution
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	var applied []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return applied, fmt.Errorf("setting %s from %s: %w", key, path, err)
		}
		applied = append(applied, key)
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return applied, nil
}

// parseEnvLine extracts KEY=VALUE from a line.
// Handles an optional export prefix and single or double quotes around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}
