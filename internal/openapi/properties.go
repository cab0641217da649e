package openapi

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Properties maps property names to schemas and remembers insertion order.
// A nil *Properties behaves as an empty map for reads.
type Properties struct {
	keys   []string
	values map[string]*OrRef[Schema]
}

// NewProperties returns an empty property map.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]*OrRef[Schema])}
}

// Set stores value under name. Replacing keeps the original position.
func (p *Properties) Set(name string, value *OrRef[Schema]) {
	if p.values == nil {
		p.values = make(map[string]*OrRef[Schema])
	}
	if _, exists := p.values[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

// Get returns the schema stored under name.
func (p *Properties) Get(name string) (*OrRef[Schema], bool) {
	if p == nil {
		return nil, false
	}
	value, ok := p.values[name]
	return value, ok
}

// Delete removes name and reports whether it was present.
func (p *Properties) Delete(name string) bool {
	if p == nil {
		return false
	}
	if _, ok := p.values[name]; !ok {
		return false
	}
	delete(p.values, name)
	for i, key := range p.keys {
		if key == name {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the property names in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// SortedKeys returns the property names in lexicographic order.
func (p *Properties) SortedKeys() []string {
	keys := p.Keys()
	sort.Strings(keys)
	return keys
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// MarshalJSON writes the properties as an object in insertion order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object; keys are inserted in sorted order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]*OrRef[Schema]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.keys = nil
	p.values = make(map[string]*OrRef[Schema], len(raw))
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p.Set(name, raw[name])
	}
	return nil
}
