package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Bag is a loosely typed record shape: a decoded JSON body, a set of form
// values or a database row. Keys may use camelCase (wire) or snake_case
// (storage) names.
type Bag map[string]any

// lookup returns the first present value among keys. A value is present when
// it is non-nil and, for strings, non-empty.
func (b Bag) lookup(keys ...string) (any, bool) {
	for _, key := range keys {
		v, ok := b[key]
		if !ok {
			continue
		}

		v = indirect(v)
		if v == nil {
			continue
		}

		if rv := reflect.ValueOf(v); (rv.Kind() == reflect.String || rv.Kind() == reflect.Slice) && rv.Len() == 0 {
			continue
		}

		return v, true
	}

	return nil, false
}

func (b Bag) stringField(def string, keys ...string) string {
	v, ok := b.lookup(keys...)
	if !ok {
		return def
	}

	s, ok := toString(v)
	if !ok || s == "" {
		return def
	}

	return s
}

func (b Bag) optionalString(keys ...string) *string {
	v, ok := b.lookup(keys...)
	if !ok {
		return nil
	}

	s, ok := toString(v)
	if !ok || s == "" {
		return nil
	}

	return &s
}

// intField returns def when no key is present. A present value that is not an
// integer yields 0, which is outside every range the model accepts.
func (b Bag) intField(def int, keys ...string) int {
	v, ok := b.lookup(keys...)
	if !ok {
		return def
	}

	n, ok := toInt64(v)
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0
	}

	return int(n)
}

// idField treats zero and unparsable identifiers as absent.
func (b Bag) idField(keys ...string) *int64 {
	v, ok := b.lookup(keys...)
	if !ok {
		return nil
	}

	n, ok := toInt64(v)
	if !ok || n == 0 {
		return nil
	}

	return &n
}

func (b Bag) optionalInt64(keys ...string) *int64 {
	v, ok := b.lookup(keys...)
	if !ok {
		return nil
	}

	n, ok := toInt64(v)
	if !ok {
		return nil
	}

	return &n
}

func (b Bag) timeField(keys ...string) *time.Time {
	v, ok := b.lookup(keys...)
	if !ok {
		return nil
	}

	var (
		t   time.Time
		err error
	)

	switch tv := v.(type) {
	case time.Time:
		t = tv
	case []byte:
		t, err = cast.ToTimeE(string(tv))
	default:
		t, err = cast.ToTimeE(tv)
	}

	if err != nil || t.IsZero() {
		return nil
	}

	return &t
}

func indirect(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	return rv.Interface()
}

func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case json.Number:
		return s.String(), true
	}

	// named string types such as Severity
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), true
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}

	return s, true
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case bool:
		return 0, false
	case float64:
		return integral(n)
	case float32:
		return integral(float64(n))
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}

		f, err := n.Float64()
		if err != nil {
			return 0, false
		}

		return integral(f)
	case string:
		return parseInt(n)
	case []byte:
		return parseInt(string(n))
	}

	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, false
	}

	return i, true
}

func parseInt(s string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}

	return i, true
}

func integral(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func derefInt64(n *int64) any {
	if n == nil {
		return nil
	}

	return *n
}

func derefTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return *t
}

// unmarshalBag decodes a JSON object keeping numbers as json.Number so that
// integral and fractional values stay distinguishable.
func unmarshalBag(data []byte, b *Bag) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	return dec.Decode(b)
}
