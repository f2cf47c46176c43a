// Package extractor reads the top-level member names of JSON documents.
package extractor

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/zerr"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Extract returns the top-level member names of the JSON object in content, in document order.
// A repeated name is reported once, at its first position.
func Extract(path string, content []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(path, err.Error())
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, malformed(path, "root value is not an object")
	}

	var keys []string
	seen := make(map[string]struct{})

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed(path, err.Error())
		}
		key, ok := tok.(string)
		if !ok {
			return nil, malformed(path, "object member name is not a string")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, malformed(path, err.Error())
		}

		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, malformed(path, err.Error())
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed(path, "unexpected content after the root object")
	}

	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

func malformed(path, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrMalformedDocument, reason), "path", path)
}
