// Package sanitize strips markup and script injection vectors from untrusted input.
package sanitize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	angleBrackets   = regexp.MustCompile(`[<>]`)
	javascriptProto = regexp.MustCompile(`(?i)javascript:`)
	eventHandler    = regexp.MustCompile(`(?i)on\w+=`)
)

// String removes angle brackets, javascript: schemes and inline event handler
// assignments, in this order, and trims the result.
func String(value string) string {
	value = angleBrackets.ReplaceAllString(value, "")
	value = javascriptProto.ReplaceAllString(value, "")
	value = eventHandler.ReplaceAllString(value, "")
	return strings.TrimSpace(value)
}

// Value sanitizes a decoded JSON value. Strings are cleaned, sequences element-wise
// and mappings in both keys and values; any other kind is returned untouched.
func Value(value any) any {
	switch v := value.(type) {
	case string:
		return String(v)
	case []any:
		cleaned := make([]any, len(v))
		for i, item := range v {
			cleaned[i] = Value(item)
		}
		return cleaned
	case *Object:
		cleaned := &Object{Members: make([]Member, 0, len(v.Members))}
		for _, member := range v.Members {
			cleaned.Set(String(member.Key), Value(member.Value))
		}
		return cleaned
	case map[string]any:
		cleaned := make(map[string]any, len(v))
		for key, item := range v {
			cleaned[String(key)] = Value(item)
		}
		return cleaned
	default:
		return value
	}
}

// JSON sanitizes a JSON document. Object members keep their document order, so
// when two keys collapse to the same sanitized key the later one wins.
func JSON(body []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	value, err := decodeValue(decoder)
	if err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	return json.Marshal(Value(value))
}

// Member is one key/value pair of an Object
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that remembers the order of its members
type Object struct {
	Members []Member
	index   map[string]int
}

// Set replaces the value of key, or appends it when absent
func (object *Object) Set(key string, value any) {
	if object.index == nil {
		object.index = make(map[string]int, len(object.Members))
		for i, member := range object.Members {
			object.index[member.Key] = i
		}
	}
	if i, ok := object.index[key]; ok {
		object.Members[i].Value = value
		return
	}
	object.index[key] = len(object.Members)
	object.Members = append(object.Members, Member{Key: key, Value: value})
}

func (object *Object) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, member := range object.Members {
		if i > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(member.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(member.Value)
		if err != nil {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

func decodeValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch delim := token.(type) {
	case json.Delim:
		switch delim {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", delim)
		}
	default:
		return token, nil
	}
}

func decodeObject(decoder *json.Decoder) (*Object, error) {
	object := &Object{}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", token)
		}

		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		object.Set(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return object, nil
}

func decodeArray(decoder *json.Decoder) ([]any, error) {
	items := make([]any, 0)
	for decoder.More() {
		item, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return items, nil
}
