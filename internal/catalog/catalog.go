// Package catalog loads and serializes locale catalogs.
//
// A catalog is a flat JSON object mapping stable string keys to UI text.
// Go maps do not preserve key order, so the catalog keeps its own key list
// in source-file order; translated files are written in that same order.
package catalog

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Catalog is an ordered key→text mapping, immutable after Parse.
type Catalog struct {
	keys   []string
	values map[string]string
}

// Parse decodes a JSON object into a Catalog, preserving key order.
// Values must all be strings.
func Parse(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("catalog must be a JSON object, got %v", tok)
	}

	c := &Catalog{values: make(map[string]string)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode catalog key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("catalog key must be a string, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode value for key %q: %w", key, err)
		}
		value, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("value for key %q must be a string, got %v", key, valTok)
		}

		if _, dup := c.values[key]; !dup {
			c.keys = append(c.keys, key)
		}
		c.values[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return c, nil
}

// Keys returns the catalog keys in source order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Get returns the source text for a key.
func (c *Catalog) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of keys in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Render serializes a key→text mapping as a 2-space indented JSON object
// in catalog key order. Non-ASCII characters are written literally, not
// escaped. Every catalog key must be present in values.
func (c *Catalog) Render(values map[string]string) ([]byte, error) {
	if len(c.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range c.keys {
		value, ok := values[key]
		if !ok {
			return nil, fmt.Errorf("missing value for key %q", key)
		}

		encodedKey, err := encodeString(key)
		if err != nil {
			return nil, err
		}
		encodedValue, err := encodeString(value)
		if err != nil {
			return nil, err
		}

		buf.WriteString("  ")
		buf.Write(encodedKey)
		buf.WriteString(": ")
		buf.Write(encodedValue)
		if i < len(c.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}")

	return buf.Bytes(), nil
}

// encodeString encodes a single JSON string without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode string: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
