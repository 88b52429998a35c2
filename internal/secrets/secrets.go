// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the API keys coursegen needs from a directory of
// plain-text files. The filename is the key name and the file contents
// (trimmed) are the value. Only known key names are loaded; anything else
// gets a warning so a typoed filename is noticed rather than silently
// ignored.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key names recognized in the secrets directory.
const (
	// AnthropicAPIKey authenticates model calls.
	AnthropicAPIKey = "anthropic-api-key"

	// TavilyAPIKey authenticates insight web searches.
	TavilyAPIKey = "tavily-api-key"
)

var knownKeys = map[string]bool{
	AnthropicAPIKey: true,
	TavilyAPIKey:    true,
}

// Load reads the known key files under dir and returns a map of key name
// to trimmed value. A missing directory or missing key files are not
// errors; Load returns an empty map. Unreadable or unrecognized files
// produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	keys := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !knownKeys[name] {
			fmt.Fprintf(os.Stderr, "warning: ignoring unrecognized secret file %s\n", name)
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			keys[name] = value
		}
	}

	return keys, nil
}
