package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
)

// Kind names the catalog section an entry belongs to.
type Kind string

const (
	KindType     Kind = "type"
	KindFunction Kind = "function"
	KindEvent    Kind = "event"
)

// Format selects the detail rendering requested from /Help.
type Format string

const (
	// FormatFull returns the complete reflection record.
	FormatFull Format = "Full"
	// FormatConsole returns the HTTP binding of a function.
	FormatConsole Format = "Console"
)

// Index lists catalog entry names in service order.
type Index struct {
	Types     []string
	Functions []string
	Events    []string
}

// Len returns the total number of entries.
func (ix *Index) Len() int {
	return len(ix.Types) + len(ix.Functions) + len(ix.Events)
}

type helpQuery struct {
	Target string `schema:"target"`
	Format Format `schema:"format"`
}

var queryEncoder = schema.NewEncoder()

// Help fetches the /Help index.
func (c *Client) Help(ctx context.Context) (*Index, error) {
	var body struct {
		Types     json.RawMessage `json:"types"`
		Functions json.RawMessage `json:"functions"`
		Events    json.RawMessage `json:"events"`
	}
	if err := c.do(ctx, http.MethodPost, "/Help", nil, &body); err != nil {
		return nil, err
	}

	var ix Index
	var err error
	if ix.Types, err = objectKeys(body.Types); err != nil {
		return nil, fmt.Errorf("help index types: %w", err)
	}
	if ix.Functions, err = objectKeys(body.Functions); err != nil {
		return nil, fmt.Errorf("help index functions: %w", err)
	}
	if ix.Events, err = objectKeys(body.Events); err != nil {
		return nil, fmt.Errorf("help index events: %w", err)
	}
	return &ix, nil
}

// Detail fetches one entry in the given format and returns its record.
// The Full format answers with a one-element array and the Console format
// with an object keyed by name; both are unwrapped.
func (c *Client) Detail(ctx context.Context, kind Kind, name string, format Format) (json.RawMessage, error) {
	query := url.Values{}
	if err := queryEncoder.Encode(helpQuery{Target: name, Format: format}, query); err != nil {
		return nil, fmt.Errorf("encode %s query: %w", kind, err)
	}

	var payload json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/Help", query, &payload); err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	record, err := unwrapDetail(payload, name, format)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	return record, nil
}

func unwrapDetail(payload json.RawMessage, name string, format Format) (json.RawMessage, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, errors.New("empty detail response")
	}

	switch {
	case payload[0] == '[':
		var list []json.RawMessage
		if err := json.Unmarshal(payload, &list); err != nil {
			return nil, fmt.Errorf("decode %s detail: %w", format, err)
		}
		if len(list) == 0 {
			return nil, errors.New("empty detail response")
		}
		return list[0], nil
	case format == FormatConsole && payload[0] == '{':
		var byName map[string]json.RawMessage
		if err := json.Unmarshal(payload, &byName); err != nil {
			return nil, fmt.Errorf("decode %s detail: %w", format, err)
		}
		if rec, ok := byName[name]; ok {
			return rec, nil
		}
		return payload, nil
	default:
		return payload, nil
	}
}

// Version returns the build version reported by /system/v1/builds.
func (c *Client) Version(ctx context.Context) (string, error) {
	var body struct {
		Version string `json:"version"`
	}
	if err := c.do(ctx, http.MethodGet, "/system/v1/builds", nil, &body); err != nil {
		return "", err
	}
	return body.Version, nil
}

// objectKeys returns the keys of a JSON object in document order.
// A null or absent object yields no keys.
func objectKeys(data json.RawMessage) ([]string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
