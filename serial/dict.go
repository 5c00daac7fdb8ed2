package serial

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Dict is a dictionary which remembers the insertion order of its keys.
// Values are strings, bools, numbers, nil, []any or *Dict.
//
// Dicts encode to and decode from JSON and YAML with their key order intact.
type Dict struct {
	keys []string
	vals map[string]any
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{vals: make(map[string]any)}
}

// Set stores a value. Overwriting keeps the key's position.
func (d *Dict) Set(key string, value any) *Dict {
	if d.vals == nil {
		d.vals = make(map[string]any)
	}
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = value
	return d
}

// Get returns the value for key.
func (d *Dict) Get(key string) (any, bool) {
	if d == nil || d.vals == nil {
		return nil, false
	}
	v, ok := d.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// --- JSON ------------------------------------------------------------------

// MarshalJSON encodes d as a JSON object with keys in insertion order.
// Markup characters in strings are not escaped.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSON(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeJSON(&buf, d.vals[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

// UnmarshalJSON decodes a JSON object into d, keeping the order of keys.
// Numbers are decoded as json.Number.
func (d *Dict) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return err
	}
	obj, ok := v.(*Dict)
	if !ok {
		return fmt.Errorf("expected JSON object, have %T", v)
	}
	*d = *obj
	return nil
}

func decodeJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		d := NewDict()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("expected object key, have %v", kt)
			}
			v, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			d.Set(key, v)
		}
		_, err = dec.Token() // '}'
		return d, err
	case '[':
		list := []any{}
		for dec.More() {
			v, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		_, err = dec.Token() // ']'
		return list, err
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

// --- YAML ------------------------------------------------------------------

// MarshalYAML encodes d as a YAML mapping with keys in insertion order.
func (d *Dict) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range d.Keys() {
		key := &yaml.Node{}
		key.SetString(k)
		val := &yaml.Node{}
		if err := val.Encode(d.vals[k]); err != nil {
			return nil, err
		}
		m.Content = append(m.Content, key, val)
	}
	return m, nil
}

// UnmarshalYAML decodes a YAML mapping into d, keeping the order of keys.
func (d *Dict) UnmarshalYAML(n *yaml.Node) error {
	v, err := decodeYAML(n)
	if err != nil {
		return err
	}
	obj, ok := v.(*Dict)
	if !ok {
		return fmt.Errorf("expected YAML mapping, have %T", v)
	}
	*d = *obj
	return nil
}

func decodeYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeYAML(n.Content[0])
	case yaml.AliasNode:
		return decodeYAML(n.Alias)
	case yaml.MappingNode:
		d := NewDict()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", k.Line)
			}
			val, err := decodeYAML(v)
			if err != nil {
				return nil, err
			}
			d.Set(k.Value, val)
		}
		return d, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			val, err := decodeYAML(item)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		return list, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node kind %v", n.Line, n.Kind)
}
