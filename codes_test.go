package jsonrpc2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardErrorConstructors(t *testing.T) {
	assert.Equal(t, ResponseError[string]{Code: -32700, Message: "Parse error"}, ParseError[string](nil))
	assert.Equal(t, ResponseError[string]{Code: -32600, Message: "Invalid Request"}, InvalidRequestError[string](nil))
	assert.Equal(t, ResponseError[string]{Code: -32601, Message: "Method not found"}, MethodNotFoundError[string](nil))
	assert.Equal(t, ResponseError[string]{Code: -32602, Message: "Invalid params"}, InvalidParamsError[string](nil))
	assert.Equal(t, ResponseError[string]{Code: -32603, Message: "Internal error"}, InternalError[string](nil))

	detail := "no such method: sum"
	withData := MethodNotFoundError(&detail)
	assert.Equal(t, &detail, withData.Data)
}

func TestResponseErrorAsGoError(t *testing.T) {
	var err error = InternalError[string](nil)
	assert.EqualError(t, err, "Internal error")
}
