package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// decodeSection converts raw into T only when raw has T's complete shape.
// encoding/json alone would zero-fill missing fields and short arrays, which
// would hand out partially populated sections.
func decodeSection[T any](raw []byte) (T, error) {
	var out T
	if err := checkShape(raw, reflect.TypeOf(out)); err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func checkShape(raw []byte, t reflect.Type) error {
	if !gjson.ValidBytes(raw) {
		return errors.New("value is not valid JSON")
	}
	return checkValue(gjson.ParseBytes(raw), t, "")
}

func checkValue(v gjson.Result, t reflect.Type, path string) error {
	switch t.Kind() {
	case reflect.Struct:
		if !v.IsObject() {
			return wrongType(path, "an object", v)
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := jsonFieldName(f)
			if name == "-" {
				continue
			}
			fieldPath := joinPath(path, name)
			child := v.Get(gjson.Escape(name))
			if !child.Exists() {
				return fmt.Errorf("missing field %q", fieldPath)
			}
			if err := checkValue(child, f.Type, fieldPath); err != nil {
				return err
			}
		}
	case reflect.Array:
		if !v.IsArray() {
			return wrongType(path, "an array", v)
		}
		elems := v.Array()
		if len(elems) != t.Len() {
			return fmt.Errorf("field %q: want %d elements, got %d", path, t.Len(), len(elems))
		}
		for i, e := range elems {
			if err := checkValue(e, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Slice:
		if !v.IsArray() {
			return wrongType(path, "an array", v)
		}
		for i, e := range v.Array() {
			if err := checkValue(e, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.String:
		if v.Type != gjson.String {
			return wrongType(path, "a string", v)
		}
	case reflect.Bool:
		if v.Type != gjson.True && v.Type != gjson.False {
			return wrongType(path, "a boolean", v)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type != gjson.Number {
			return wrongType(path, "an integer", v)
		}
		if _, err := strconv.ParseInt(v.Raw, 10, t.Bits()); err != nil {
			return wrongType(path, "an integer", v)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Type != gjson.Number {
			return wrongType(path, "a non-negative integer", v)
		}
		if _, err := strconv.ParseUint(v.Raw, 10, t.Bits()); err != nil {
			return wrongType(path, "a non-negative integer", v)
		}
	case reflect.Float32, reflect.Float64:
		if v.Type != gjson.Number {
			return wrongType(path, "a number", v)
		}
	}
	return nil
}

func wrongType(path, want string, v gjson.Result) error {
	if path == "" {
		path = "."
	}
	return fmt.Errorf("field %q: want %s, got %s", path, want, describe(v))
}

func describe(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	case v.Type == gjson.Null:
		return "null"
	case v.Type == gjson.String:
		return "string"
	case v.Type == gjson.Number:
		return "number " + v.Raw
	case v.Type == gjson.True, v.Type == gjson.False:
		return "boolean"
	}
	return v.Type.String()
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
