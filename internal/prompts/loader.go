// Package prompts embeds the JSON prompt catalogs used by the criteria
// analyzer and hands out individual templates by key.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var catalogFS embed.FS

// catalogCache memoizes parsed catalog files. The analyzer asks for the same
// catalog on every inference call, so each file is parsed at most once.
type catalogCache struct {
	mu       sync.RWMutex
	catalogs map[string]map[string]string
}

var cache = &catalogCache{catalogs: make(map[string]map[string]string)}

func (c *catalogCache) lookup(filename string) (map[string]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	catalog, ok := c.catalogs[filename]
	return catalog, ok
}

func (c *catalogCache) store(filename string, catalog map[string]string) {
	c.mu.Lock()
	c.catalogs[filename] = catalog
	c.mu.Unlock()
}

func (c *catalogCache) reset() {
	c.mu.Lock()
	c.catalogs = make(map[string]map[string]string)
	c.mu.Unlock()
}

// Get returns the template stored under key in the named catalog file. The
// filename is bare, without a directory ("criteria.json").
func Get(filename, key string) (string, error) {
	catalog, err := loadCatalog(filename)
	if err != nil {
		return "", err
	}

	template, ok := catalog[key]
	if !ok {
		return "", fmt.Errorf("prompt %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for templates whose absence is a programming error, such as
// catalogs referenced from package-level declarations.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with the matching values from
// data. Placeholders with no matching key are left in place.
func Format(template string, data map[string]string) string {
	out := template
	for key, value := range data {
		out = strings.ReplaceAll(out, "{{."+key+"}}", value)
	}
	return out
}

// List reports every template key the named catalog defines.
func List(filename string) ([]string, error) {
	catalog, err := loadCatalog(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	return keys, nil
}

// ClearCache drops every memoized catalog so tests can force a reload.
func ClearCache() {
	cache.reset()
}

func loadCatalog(filename string) (map[string]string, error) {
	if catalog, ok := cache.lookup(filename); ok {
		return catalog, nil
	}

	data, err := catalogFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var catalog map[string]string
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cache.store(filename, catalog)
	return catalog, nil
}
