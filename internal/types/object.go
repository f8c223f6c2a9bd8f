package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field is a single key/value pair of an Object.
type Field struct {
	Key   string
	Value any
}

// Object is a JSON object that keeps its keys in document order.
//
// Values are the JSON scalars (string, json.Number, bool, nil), []any for
// arrays and Object for nested objects. Methods never modify the receiver;
// With returns a new Object.
type Object []Field

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, field := range o {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// GetString returns the value stored under key when it is a JSON string.
func (o Object) GetString(key string) (string, bool) {
	value, ok := o.Get(key)
	if !ok {
		return "", false
	}
	text, ok := value.(string)
	return text, ok
}

func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for _, field := range o {
		keys = append(keys, field.Key)
	}
	return keys
}

// With returns a copy of o where key holds value. An existing key keeps its
// position; a new key is appended.
func (o Object) With(key string, value any) Object {
	if o == nil {
		o = Object{}
	}
	return o.Clone().set(key, value)
}

// set replaces or appends key in place.
func (o Object) set(key string, value any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Field{Key: key, Value: value})
}

// Clone returns a deep copy of o. A nil Object stays nil.
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	out := make(Object, len(o))
	for i, field := range o {
		out[i] = Field{Key: field.Key, Value: cloneValue(field.Value)}
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case Object:
		return v.Clone()
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return v
	}
}

func (o Object) MarshalJSON() ([]byte, error) {
	return o.orderedMap(jsonValue).MarshalJSON()
}

// MarshalYAML renders o as a YAML mapping in key order.
func (o Object) MarshalYAML() (any, error) {
	return o.orderedMap(yamlValue).MarshalYAML()
}

// orderedMap converts o, nested objects included, into the ordered map the
// encoders work on. convert is applied to every scalar.
func (o Object) orderedMap(convert func(any) any) *orderedmap.OrderedMap[string, any] {
	om := orderedmap.New[string, any](len(o))
	for _, field := range o {
		om.Set(field.Key, encodeValue(field.Value, convert))
	}
	return om
}

func encodeValue(value any, convert func(any) any) any {
	switch v := value.(type) {
	case Object:
		return v.orderedMap(convert)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = encodeValue(elem, convert)
		}
		return out
	default:
		return convert(v)
	}
}

func jsonValue(value any) any {
	return value
}

// yamlValue turns json.Number into a native number so YAML does not quote it.
func yamlValue(value any) any {
	number, ok := value.(json.Number)
	if !ok {
		return value
	}
	if i, err := number.Int64(); err == nil {
		return i
	}
	if f, err := number.Float64(); err == nil {
		return f
	}
	return number.String()
}

// UnmarshalJSON keeps key order at every level. The ordered map only orders
// the top level when values are decoded as any, so members are read as raw
// messages and nested objects are decoded recursively.
func (o *Object) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = nil
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("expected JSON object, got %.20q", data)
	}
	if !json.Valid(data) {
		return fmt.Errorf("invalid JSON object")
	}
	members := orderedmap.New[string, json.RawMessage]()
	if err := members.UnmarshalJSON(data); err != nil {
		return err
	}
	obj := make(Object, 0, members.Len())
	for pair := members.Oldest(); pair != nil; pair = pair.Next() {
		value, err := decodeValue(pair.Value)
		if err != nil {
			return fmt.Errorf("field %q: %w", pair.Key, err)
		}
		obj = append(obj, Field{Key: pair.Key, Value: value})
	}
	*o = obj
	return nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty JSON value")
	}
	switch raw[0] {
	case '{':
		var nested Object
		if err := nested.UnmarshalJSON(raw); err != nil {
			return nil, err
		}
		return nested, nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, err
		}
		arr := make([]any, 0, len(elems))
		for _, elem := range elems {
			value, err := decodeValue(elem)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}
