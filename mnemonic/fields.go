package mnemonic

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// notApplicableText is how an absent field reads inside an explanation.
const notApplicableText = "n/a"

// Field is one named operand slot of a decoded line.
type Field struct {
	Value      string
	Applicable bool
}

// NotApplicable marks a field the operation declares but the line does not supply.
var NotApplicable = Field{}

func valueOf(v string) Field {
	return Field{Value: v, Applicable: true}
}

func (f Field) String() string {
	if !f.Applicable {
		return notApplicableText
	}
	return f.Value
}

// FieldSet is an insertion ordered mapping of field name to Field.
type FieldSet struct {
	fields *orderedmap.OrderedMap[string, Field]
}

func newFieldSet() *FieldSet {
	return &FieldSet{fields: orderedmap.New[string, Field]()}
}

func (s *FieldSet) set(name string, f Field) *FieldSet {
	s.fields.Set(name, f)
	return s
}

// Get returns the named field, or NotApplicable when the operation does not declare it.
func (s *FieldSet) Get(name string) Field {
	if f, ok := s.fields.Get(name); ok {
		return f
	}
	return NotApplicable
}

// Has reports whether the operation declares the named field.
func (s *FieldSet) Has(name string) bool {
	_, ok := s.fields.Get(name)
	return ok
}

// Len returns the number of declared fields.
func (s *FieldSet) Len() int {
	return s.fields.Len()
}

// Names returns the declared field names in declaration order.
func (s *FieldSet) Names() []string {
	names := make([]string, 0, s.fields.Len())
	for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// MarshalJSON encodes the set as an object in declaration order, with
// not-applicable fields as null.
func (s *FieldSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
		if pair != s.fields.Oldest() {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if !pair.Value.Applicable {
			buf.WriteString("null")
			continue
		}
		value, err := json.Marshal(pair.Value.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
