// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package i18n resolves user-facing message keys against embedded catalogs.
package i18n

import (
	"fmt"
	"sync"

	"embed"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// FallbackLocale is used for any key missing from the active catalog.
const FallbackLocale = "en"

// Catalog translates message keys for one locale.
type Catalog struct {
	locale   string
	messages map[string]string
	fallback map[string]string
}

// Load reads the embedded catalog for the given locale. Unknown locales fall
// back entirely to English.
func Load(locale string) (*Catalog, error) {
	fallback, err := readCatalog(FallbackLocale)
	if err != nil {
		return nil, err
	}
	messages := fallback
	if locale != "" && locale != FallbackLocale {
		if m, err := readCatalog(locale); err == nil {
			messages = m
		}
	}
	return &Catalog{locale: locale, messages: messages, fallback: fallback}, nil
}

func readCatalog(locale string) (map[string]string, error) {
	raw, err := catalogFS.ReadFile("catalogs/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unable to read catalog for locale %q: %v", locale, err)
	}
	m := map[string]string{}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unable to parse catalog for locale %q: %v", locale, err)
	}
	return m, nil
}

// Translate formats the message registered under key. A key absent from both
// the active and the fallback catalog is returned verbatim so a missing
// translation never hides a message.
func (c *Catalog) Translate(key string, args ...interface{}) string {
	msg, ok := c.messages[key]
	if !ok {
		msg, ok = c.fallback[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

var (
	defaultCatalog *Catalog
	defaultMu      sync.RWMutex
)

// SetLocale swaps the catalog used by the package-level T.
func SetLocale(locale string) error {
	c, err := Load(locale)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultCatalog = c
	defaultMu.Unlock()
	return nil
}

// T translates with the package-level catalog, loading English on first use.
func T(key string, args ...interface{}) string {
	defaultMu.RLock()
	c := defaultCatalog
	defaultMu.RUnlock()
	if c == nil {
		if err := SetLocale(FallbackLocale); err != nil {
			return key
		}
		defaultMu.RLock()
		c = defaultCatalog
		defaultMu.RUnlock()
	}
	return c.Translate(key, args...)
}
