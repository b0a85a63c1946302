package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/mzaytsev/taskmirror/internal/domain"
)

// dateTimeScalar serializes timestamps as UTC RFC 3339 strings and parses the
// same format back. Anything unparseable becomes nil rather than an execution
// error; the schema's non-null constraints decide whether that is fatal.
var dateTimeScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "DateTime",
	Description: "An RFC 3339 timestamp in UTC.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return domain.FormatTime(v)
		case *time.Time:
			if v == nil {
				return nil
			}
			return domain.FormatTime(*v)
		case string:
			return v
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		raw, ok := value.(string)
		if !ok {
			return nil
		}
		return parseDateTime(raw)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		// Non-string literals parse to nil, they are never an error.
		lit, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		return parseDateTime(lit.Value)
	},
})

func parseDateTime(raw string) interface{} {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return parsed
}
