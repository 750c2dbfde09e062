package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paramtable-adapter/naming"
)

func TestSnake(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"ExpectedBool":    "expected_bool",
		"OrderID":         "order_id",
		"customerName":    "customer_name",
		"XMLParser":       "xml_parser",
		"getHTTPResponse": "get_http_response",
		"already_snake":   "already_snake",
		"X":               "x",
		"":                "",
	}

	for in, want := range cases {
		assert.Equal(t, want, naming.Snake(in), "Snake(%q)", in)
	}
}

func TestLowerCamel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"ExpectedBool": "expectedBool",
		"OrderID":      "orderId",
		"customerName": "customerName",
		"snake_case":   "snakeCase",
		"":             "",
	}

	for in, want := range cases {
		assert.Equal(t, want, naming.LowerCamel(in), "LowerCamel(%q)", in)
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"order", "id"}, naming.Tokens("OrderID"))
	assert.Equal(t, []string{"xml", "parser"}, naming.Tokens("XML-Parser"))
	assert.Nil(t, naming.Tokens(""))
}
