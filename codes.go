package jsonrpc2

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     int64 = -32700
	CodeInvalidRequest int64 = -32600
	CodeMethodNotFound int64 = -32601
	CodeInvalidParams  int64 = -32602
	CodeInternalError  int64 = -32603
)

// NewResponseError builds a ResponseError. data may be nil, in which case the
// data member never reaches the wire.
func NewResponseError[D any](code int64, message string, data *D) ResponseError[D] {
	return ResponseError[D]{Code: code, Message: message, Data: data}
}

func ParseError[D any](data *D) ResponseError[D] {
	return NewResponseError(CodeParseError, "Parse error", data)
}

func InvalidRequestError[D any](data *D) ResponseError[D] {
	return NewResponseError(CodeInvalidRequest, "Invalid Request", data)
}

func MethodNotFoundError[D any](data *D) ResponseError[D] {
	return NewResponseError(CodeMethodNotFound, "Method not found", data)
}

func InvalidParamsError[D any](data *D) ResponseError[D] {
	return NewResponseError(CodeInvalidParams, "Invalid params", data)
}

func InternalError[D any](data *D) ResponseError[D] {
	return NewResponseError(CodeInternalError, "Internal error", data)
}
