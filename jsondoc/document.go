// Package jsondoc reads and writes flat JSON objects without losing key order.
//
// Values are kept as raw JSON so that they survive a round trip untouched;
// only the object layout is normalized on output (2-space indent, no HTML escaping).
package jsondoc

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/mdblp/i18n-rekey/errors"
	"github.com/napalu/goopt/v2/types/orderedmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const indent = "  "

// Document is an insertion-ordered JSON object.
type Document struct {
	entries         *orderedmap.OrderedMap[string, json.RawMessage]
	bom             bool
	trailingNewline bool
}

// New returns an empty document which is written with a trailing newline.
func New() *Document {
	return &Document{
		entries:         orderedmap.NewOrderedMap[string, json.RawMessage](),
		trailingNewline: true,
	}
}

// NewLike returns an empty document sharing d's output conventions (BOM, final newline).
func NewLike(d *Document) *Document {
	n := New()
	n.bom = d.bom
	n.trailingNewline = d.trailingNewline
	return n
}

// Parse decodes a top-level JSON object. Duplicate keys keep their first
// position and their last value.
func Parse(data []byte) (*Document, error) {
	doc := New()
	if bytes.HasPrefix(data, utf8BOM) {
		doc.bom = true
		data = data[len(utf8BOM):]
	}
	doc.trailingNewline = bytes.HasSuffix(data, []byte("\n"))

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.ErrNotAnObject
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.ErrNotAnObject
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		doc.entries.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.ErrTrailingData
	}

	return doc, nil
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return d.entries.Len()
}

// Get returns the raw value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	return d.entries.Get(key)
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.entries.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
func (d *Document) Set(key string, value json.RawMessage) {
	d.entries.Set(key, value)
}

// SetString stores s as a JSON string value.
func (d *Document) SetString(key, s string) error {
	raw, err := encodeString(s)
	if err != nil {
		return err
	}
	d.entries.Set(key, raw)
	return nil
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.entries.Len())
	for iter := d.entries.Front(); iter != nil; iter = iter.Next() {
		keys = append(keys, *iter.Key)
	}
	return keys
}

// Each calls fn for every entry in document order.
func (d *Document) Each(fn func(key string, value json.RawMessage)) {
	for iter := d.entries.Front(); iter != nil; iter = iter.Next() {
		fn(*iter.Key, iter.Value)
	}
}

// String returns the value under key if it is a JSON string.
func (d *Document) String(key string) (string, bool) {
	raw, ok := d.entries.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Marshal renders the document with 2-space indentation, restoring the
// BOM and trailing newline of the parsed input.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if d.bom {
		buf.Write(utf8BOM)
	}

	if d.entries.Len() == 0 {
		buf.WriteString("{}")
	} else {
		buf.WriteString("{\n")
		first := true
		for iter := d.entries.Front(); iter != nil; iter = iter.Next() {
			if !first {
				buf.WriteString(",\n")
			}
			first = false

			key, err := encodeString(*iter.Key)
			if err != nil {
				return nil, err
			}
			buf.WriteString(indent)
			buf.Write(key)
			buf.WriteString(": ")
			if err := json.Indent(&buf, iter.Value, indent, indent); err != nil {
				return nil, err
			}
		}
		buf.WriteString("\n}")
	}

	if d.trailingNewline {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
