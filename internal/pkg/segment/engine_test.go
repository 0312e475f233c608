package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompile_EmptyRules(t *testing.T) {
	_, err := Compile(nil)
	require.ErrorIs(t, err, ErrEmptyRules)
}

func TestCompile_UnknownField(t *testing.T) {
	_, err := Compile([]Rule{{Field: "password", Operator: "gt", Value: 1}})
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestCompile_UnknownOperator(t *testing.T) {
	_, err := Compile([]Rule{{Field: "total_events", Operator: "like", Value: 1}})
	require.ErrorIs(t, err, ErrUnknownOperator)
}

func TestMatch_SingleRule(t *testing.T) {
	program, err := Compile([]Rule{{Field: "total_events", Operator: "gte", Value: 10}})
	require.NoError(t, err)

	matched, err := program.Match(map[string]interface{}{"total_events": int64(10)})
	require.NoError(t, err)
	require.True(t, matched)

	matched, err = program.Match(map[string]interface{}{"total_events": int64(9)})
	require.NoError(t, err)
	require.False(t, matched)
}

func TestMatch_MultipleRulesAreAnd(t *testing.T) {
	program, err := Compile([]Rule{
		{Field: "total_events", Operator: "gt", Value: 5},
		{Field: "share_count", Operator: "gte", Value: 1},
	})
	require.NoError(t, err)

	matched, err := program.Match(map[string]interface{}{
		"total_events": int64(6),
		"share_count":  int64(1),
	})
	require.NoError(t, err)
	require.True(t, matched)

	matched, err = program.Match(map[string]interface{}{
		"total_events": int64(6),
		"share_count":  int64(0),
	})
	require.NoError(t, err)
	require.False(t, matched)
}

func TestMatch_MissingFieldsDefaultToZero(t *testing.T) {
	program, err := Compile([]Rule{{Field: "preference_count", Operator: "eq", Value: 0}})
	require.NoError(t, err)

	matched, err := program.Match(map[string]interface{}{})
	require.NoError(t, err)
	require.True(t, matched)
}

func TestMatch_AllOperators(t *testing.T) {
	cases := []struct {
		operator string
		value    int64
		input    int64
		want     bool
	}{
		{"gt", 5, 6, true},
		{"gt", 5, 5, false},
		{"gte", 5, 5, true},
		{"lt", 5, 4, true},
		{"lte", 5, 5, true},
		{"eq", 5, 5, true},
		{"neq", 5, 4, true},
		{"neq", 5, 5, false},
	}
	for _, c := range cases {
		program, err := Compile([]Rule{{Field: "total_events", Operator: c.operator, Value: c.value}})
		require.NoError(t, err)

		matched, err := program.Match(map[string]interface{}{"total_events": c.input})
		require.NoError(t, err)
		require.Equal(t, c.want, matched, "operator %s value %d input %d", c.operator, c.value, c.input)
	}
}
