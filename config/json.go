// Package config loads jmbuilder's configuration: JSON configuration files,
// the setup descriptor, the YAML options file and the directory layout the
// other packages work in.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mitsuki31/jmbuilder/jmerrors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jmbuilder.config")

// Dict is a decoded JSON object.
type Dict map[string]any

// ParseJSON reads the JSON object stored at path. The path must name an
// existing regular file with a ".json" suffix. An empty file yields an empty
// Dict.
func ParseJSON(path string) (Dict, error) {
	const op = "config.ParseJSON"

	if err := jmerrors.CheckFile(op, path); err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".json") {
		return nil, jmerrors.Parse(op, path, "unknown file type, expected a JSON configuration file", nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	log.Debugf("read %d bytes from %s", len(data), path)

	d, err := decodeJSON(data)
	if err != nil {
		return nil, jmerrors.Parse(op, path, "malformed JSON", err)
	}
	return d, nil
}

func decodeJSON(data []byte) (Dict, error) {
	d := Dict{}
	if len(data) == 0 {
		return d, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("top-level value is null, expected an object")
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}
	return d, nil
}

func (d Dict) lookup(op, key string) (any, error) {
	v, ok := d[key]
	if !ok {
		return nil, jmerrors.InvalidArgument(op, "missing key %q", key)
	}
	return v, nil
}

func (d Dict) String(key string) (string, error) {
	v, err := d.lookup("config.Dict.String", key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", jmerrors.TypeMismatch("config.Dict.String", "key %q holds %s, expected string", key, typeName(v))
	}
	return s, nil
}

func (d Dict) Bool(key string) (bool, error) {
	v, err := d.lookup("config.Dict.Bool", key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, jmerrors.TypeMismatch("config.Dict.Bool", "key %q holds %s, expected boolean", key, typeName(v))
	}
	return b, nil
}

func (d Dict) Float(key string) (float64, error) {
	v, err := d.lookup("config.Dict.Float", key)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, jmerrors.TypeMismatch("config.Dict.Float", "key %q holds %s, expected number", key, typeName(v))
	}
	return f, nil
}

// Ints returns the array stored under key; every element must be an integral
// number.
func (d Dict) Ints(key string) ([]int, error) {
	const op = "config.Dict.Ints"

	v, err := d.lookup(op, key)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, jmerrors.TypeMismatch(op, "key %q holds %s, expected array", key, typeName(v))
	}
	out := make([]int, len(arr))
	for i, e := range arr {
		f, ok := e.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, jmerrors.TypeMismatch(op, "key %q element %d holds %s, expected integer", key, i, typeName(e))
		}
		out[i] = int(f)
	}
	return out, nil
}

func (d Dict) Dict(key string) (Dict, error) {
	v, err := d.lookup("config.Dict.Dict", key)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, jmerrors.TypeMismatch("config.Dict.Dict", "key %q holds %s, expected object", key, typeName(v))
	}
	return Dict(m), nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
