package pcomb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		ok        bool
		expected  uuid.UUID
		remainder string
	}{
		{"uuid_valid", "550e8400-e29b-41d4-a716-446655440000", true, uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"), ""},
		{"uuid_uppercase", "550E8400-E29B-41D4-A716-446655440000 tail", true, uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"), " tail"},
		{"uuid_then_tag", `123e4567-e89b-12d3-a456-426614174000"/>`, true, uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"), `"/>`},
		{"uuid_invalid", "invalid-uuid", false, uuid.UUID{}, "invalid-uuid"},
		{"uuid_bad_hex", "550e8400-e29b-41d4-a716-44665544zzzz", false, uuid.UUID{}, "550e8400-e29b-41d4-a716-44665544zzzz"},
		{"uuid_short", "550e8400-e29b-41d4", false, uuid.UUID{}, "550e8400-e29b-41d4"},
		{"uuid_empty", "", false, uuid.UUID{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := UUID.ParseString(tt.input)
			require.Equal(t, tt.ok, res.Ok())
			assert.Equal(t, tt.expected, res.Value)
			assert.Equal(t, tt.remainder, res.Remainder.String())
		})
	}
}

func TestJSONValue(t *testing.T) {
	t.Run("Object", func(t *testing.T) {
		res := JSONValue.ParseString(`{"name": "John", "age": 30}/>`)
		require.True(t, res.Ok())
		assert.True(t, res.Value.IsObject())
		assert.Equal(t, "John", res.Value.Get("name").String())
		assert.Equal(t, int64(30), res.Value.Get("age").Int())
		assert.Equal(t, "/>", res.Remainder.String())
	})

	t.Run("NestedObject", func(t *testing.T) {
		res := JSONValue.ParseString(`{"person": {"name": "John", "tags": ["a", "b"]}} rest`)
		require.True(t, res.Ok())
		assert.Equal(t, "b", res.Value.Get("person.tags.1").String())
		assert.Equal(t, " rest", res.Remainder.String())
	})

	t.Run("Array", func(t *testing.T) {
		res := JSONValue.ParseString(`[1,2,3],x`)
		require.True(t, res.Ok())
		assert.True(t, res.Value.IsArray())
		assert.Len(t, res.Value.Array(), 3)
		assert.Equal(t, ",x", res.Remainder.String())
	})

	t.Run("Scalars", func(t *testing.T) {
		tests := []struct {
			input     string
			raw       string
			remainder string
		}{
			{`"str" tail`, `"str"`, " tail"},
			{`true>`, `true`, ">"},
			{`null`, `null`, ""},
			{`-12.5e3]`, `-12.5e3`, "]"},
		}
		for _, tt := range tests {
			res := JSONValue.ParseString(tt.input)
			require.True(t, res.Ok(), tt.input)
			assert.Equal(t, tt.raw, res.Value.Raw, tt.input)
			assert.Equal(t, tt.remainder, res.Remainder.String(), tt.input)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, input := range []string{"", " {}", "{", `{"age":}`, "nope", "}"} {
			res := JSONValue.ParseString(input)
			require.False(t, res.Ok(), input)
			assert.Equal(t, input, res.Remainder.String(), input)
		}
	})

	t.Run("InSequence", func(t *testing.T) {
		attr := Pair(Left(Identifier, MatchLiteral("=")), JSONValue)
		res := attr.ParseString(`data={"id": 7} next`)
		require.True(t, res.Ok())
		assert.Equal(t, "data", res.Value.First)
		assert.Equal(t, int64(7), res.Value.Second.Get("id").Int())
		assert.Equal(t, " next", res.Remainder.String())
	})
}
