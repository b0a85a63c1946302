package graphql

import (
	"testing"
	"time"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_Serialize(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2026, 3, 1, 14, 30, 0, 0, loc)

	assert.Equal(t, "2026-03-01T12:30:00Z", dateTimeScalar.Serialize(ts), "serializes in UTC")
	assert.Equal(t, "2026-03-01T12:30:00Z", dateTimeScalar.Serialize(&ts))
	assert.Nil(t, dateTimeScalar.Serialize((*time.Time)(nil)))
	assert.Nil(t, dateTimeScalar.Serialize(42))
}

func TestDateTime_ParseValue(t *testing.T) {
	parsed := dateTimeScalar.ParseValue("2026-03-01T12:30:00Z")
	require.IsType(t, time.Time{}, parsed)
	assert.True(t, parsed.(time.Time).Equal(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)))

	assert.Nil(t, dateTimeScalar.ParseValue("yesterday"))
	assert.Nil(t, dateTimeScalar.ParseValue(123))
}

func TestDateTime_ParseLiteral(t *testing.T) {
	parsed := dateTimeScalar.ParseLiteral(&ast.StringValue{Value: "2026-03-01T12:30:00Z"})
	require.IsType(t, time.Time{}, parsed)

	assert.Nil(t, dateTimeScalar.ParseLiteral(&ast.StringValue{Value: "not a timestamp"}))
	assert.Nil(t, dateTimeScalar.ParseLiteral(&ast.IntValue{Value: "1234"}), "non-string literals never panic")
}
