package openapi

import (
	"encoding/json"
	"fmt"
)

// EnumKind is the literal type held by an Enum.
type EnumKind int

const (
	// EnumString holds string literals.
	EnumString EnumKind = iota
	// EnumInteger holds integer literals.
	EnumInteger
	// EnumStringList holds array-of-string literals.
	EnumStringList
)

// Enum is a list of allowed literals of a single kind: strings, integers or
// string arrays.
type Enum struct {
	kind    EnumKind
	strings []string
	ints    []int
	lists   [][]string
}

// StringEnum builds an enum of string literals.
func StringEnum(values ...string) *Enum {
	return &Enum{kind: EnumString, strings: append([]string{}, values...)}
}

// IntEnum builds an enum of integer literals.
func IntEnum(values ...int) *Enum {
	return &Enum{kind: EnumInteger, ints: append([]int{}, values...)}
}

// StringListEnum builds an enum whose literals are arrays of strings.
func StringListEnum(values ...[]string) *Enum {
	lists := make([][]string, 0, len(values))
	for _, value := range values {
		lists = append(lists, append([]string{}, value...))
	}
	return &Enum{kind: EnumStringList, lists: lists}
}

// Kind returns the literal type of the enum.
func (e *Enum) Kind() EnumKind {
	if e == nil {
		return EnumString
	}
	return e.kind
}

// IsInteger reports whether the enum holds integers.
func (e *Enum) IsInteger() bool {
	return e.Kind() == EnumInteger
}

// Strings returns the string literals, nil for other kinds.
func (e *Enum) Strings() []string {
	if e == nil || e.kind != EnumString {
		return nil
	}
	return append([]string{}, e.strings...)
}

// Ints returns the integer literals, nil for other kinds.
func (e *Enum) Ints() []int {
	if e.Kind() != EnumInteger {
		return nil
	}
	return append([]int{}, e.ints...)
}

// StringLists returns the array literals, nil for other kinds.
func (e *Enum) StringLists() [][]string {
	if e.Kind() != EnumStringList {
		return nil
	}
	lists := make([][]string, 0, len(e.lists))
	for _, list := range e.lists {
		lists = append(lists, append([]string{}, list...))
	}
	return lists
}

// Len returns the number of literals.
func (e *Enum) Len() int {
	if e == nil {
		return 0
	}
	switch e.kind {
	case EnumInteger:
		return len(e.ints)
	case EnumStringList:
		return len(e.lists)
	}
	return len(e.strings)
}

// MarshalJSON encodes the literals as a JSON array.
func (e Enum) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case EnumInteger:
		if e.ints == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(e.ints)
	case EnumStringList:
		if e.lists == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(e.lists)
	}
	if e.strings == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e.strings)
}

// UnmarshalJSON accepts an array of strings, integers or string arrays.
// An empty array decodes as a string enum.
func (e *Enum) UnmarshalJSON(data []byte) error {
	var strs []string
	if err := json.Unmarshal(data, &strs); err == nil {
		*e = Enum{kind: EnumString, strings: append([]string{}, strs...)}
		return nil
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err == nil {
		*e = Enum{kind: EnumInteger, ints: ints}
		return nil
	}

	var lists [][]string
	if err := json.Unmarshal(data, &lists); err == nil {
		*e = Enum{kind: EnumStringList, lists: lists}
		return nil
	}

	return fmt.Errorf("enum must be a list of strings, integers or string arrays: %s", data)
}
