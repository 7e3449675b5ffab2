package record

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrDecodeFailed marks malformed upstream data anywhere in the pipeline.
var ErrDecodeFailed = errors.New("decode failed")

// Record maps a schema field name to its raw upstream value.
// Absent fields are not present in the map.
type Record map[string]string

// Get returns the field value, or "" when absent.
func (r Record) Get(field string) string { return r[field] }

// Lookup reports whether the field is present.
func (r Record) Lookup(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}

// HasKeys reports whether every key field of the schema is present and non-empty.
func (r Record) HasKeys(s Schema) bool {
	for _, k := range s.Keys {
		if r[k] == "" {
			return false
		}
	}
	return true
}

// Decode splits raw on sep and assigns the parts to the schema fields by
// position. Parts beyond the schema are ignored; missing trailing fields are
// absent.
func Decode(raw, sep string, s Schema) Record {
	return Assign(strings.Split(raw, sep), s)
}

// Assign maps already split parts onto the schema fields by position.
func Assign(parts []string, s Schema) Record {
	rec := make(Record, len(s.Fields))
	for i, field := range s.Fields {
		if i >= len(parts) {
			break
		}
		rec[field] = parts[i]
	}
	return rec
}

// DecodeBatch decodes each raw string in order. Records missing a key field
// are dropped and reported to w (which may be nil).
func DecodeBatch(raws []string, sep string, s Schema, w *WarningAggregator) []Record {
	out := make([]Record, 0, len(raws))
	for i, raw := range raws {
		rec := Decode(raw, sep, s)
		if !rec.HasKeys(s) {
			w.Add(WarningMissingKey, s.Name+"#"+strconv.Itoa(i))
			continue
		}
		out = append(out, rec)
	}
	return out
}

// DecodeGroups splits raw on sep and cuts the parts into consecutive groups
// of len(s.Fields), one record per group. A trailing partial group is ignored
// and keyless groups are dropped.
func DecodeGroups(raw, sep string, s Schema, w *WarningAggregator) []Record {
	parts := strings.Split(raw, sep)
	size := len(s.Fields)
	if size == 0 {
		return nil
	}
	out := make([]Record, 0, len(parts)/size)
	for i := 0; i+size <= len(parts); i += size {
		rec := Assign(parts[i:i+size], s)
		if !rec.HasKeys(s) {
			w.Add(WarningMissingKey, s.Name+"#"+strconv.Itoa(i/size))
			continue
		}
		out = append(out, rec)
	}
	return out
}

// FromObject builds a record from a decoded JSON object, keeping only the
// schema fields with scalar values.
func FromObject(obj map[string]any, s Schema) Record {
	rec := make(Record, len(s.Fields))
	for _, field := range s.Fields {
		v, ok := obj[field]
		if !ok {
			continue
		}
		if str, ok := scalarString(v); ok {
			rec[field] = str
		}
	}
	return rec
}

// FromObjects is the object counterpart of DecodeBatch.
func FromObjects(objs []map[string]any, s Schema, w *WarningAggregator) []Record {
	out := make([]Record, 0, len(objs))
	for i, obj := range objs {
		rec := FromObject(obj, s)
		if !rec.HasKeys(s) {
			w.Add(WarningMissingKey, s.Name+"#"+strconv.Itoa(i))
			continue
		}
		out = append(out, rec)
	}
	return out
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
