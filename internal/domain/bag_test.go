package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBag_Lookup(t *testing.T) {
	var nilStr *string
	s := "value"

	testCases := []struct {
		name     string
		bag      Bag
		expected any
		found    bool
	}{
		{name: "missing", bag: Bag{}, found: false},
		{name: "nil", bag: Bag{"a": nil}, found: false},
		{name: "typed nil pointer", bag: Bag{"a": nilStr}, found: false},
		{name: "empty string", bag: Bag{"a": ""}, found: false},
		{name: "empty named string", bag: Bag{"a": Severity("")}, found: false},
		{name: "empty bytes", bag: Bag{"a": []byte{}}, found: false},
		{name: "pointer is dereferenced", bag: Bag{"a": &s}, expected: "value", found: true},
		{name: "second key", bag: Bag{"a": nil, "b": 0}, expected: 0, found: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := tc.bag.lookup("a", "b")
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestBag_StringCoercion(t *testing.T) {
	b := Bag{"n": 12, "bytes": []byte("raw"), "enum": SeverityHigh, "num": json.Number("7"), "obj": map[string]any{}}

	assert.Equal(t, "12", b.stringField("", "n"))
	assert.Equal(t, "raw", b.stringField("", "bytes"))
	assert.Equal(t, "High", b.stringField("", "enum"))
	assert.Equal(t, "7", b.stringField("", "num"))
	assert.Equal(t, "fallback", b.stringField("fallback", "obj"))
}

func TestBag_TimeField(t *testing.T) {
	ts := time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)

	b := Bag{
		"value":  ts,
		"ptr":    &ts,
		"rfc":    "2023-12-31T23:59:00Z",
		"date":   "2023-12-31",
		"bytes":  []byte("2023-12-31T23:59:00Z"),
		"broken": "yesterday",
	}

	for _, key := range []string{"value", "ptr", "rfc", "bytes"} {
		got := b.timeField(key)
		require.NotNil(t, got, key)
		assert.True(t, ts.Equal(*got), key)
	}

	date := b.timeField("date")
	require.NotNil(t, date)
	assert.Equal(t, 31, date.Day())

	assert.Nil(t, b.timeField("broken"))
	assert.Nil(t, b.timeField("missing"))
}

func TestUnmarshalBag_KeepsNumbers(t *testing.T) {
	var b Bag
	require.NoError(t, unmarshalBag([]byte(`{"priority": 2.5, "id": 3}`), &b))

	assert.Equal(t, json.Number("2.5"), b["priority"])
	assert.Equal(t, 0, b.intField(DefaultPriority, "priority"))
	assert.Equal(t, int64(3), *b.idField("id"))
}
