package jsonrpc2

import "encoding/json"

// Response represents a server's reply to a Request.
//
// A nil ID encodes as an explicit "id": null, which per the protocol means
// the id of the originating request could not be determined (for example the
// request did not parse). The id member is always present on the wire.
type Response[R, E any] struct {
	Content ResponseContent[R, E]
	ID      *uint64
}

// NewResponse builds a Response around a result or error content.
func NewResponse[R, E any](content ResponseContent[R, E], id *uint64) Response[R, E] {
	return Response[R, E]{
		Content: content,
		ID:      id,
	}
}

// ResponseContent holds exactly one of a result or an error. The variants are
// settable only through NewResult and NewError, so a content carrying both at
// once cannot be constructed. The zero value carries neither and fails to
// encode.
type ResponseContent[R, E any] struct {
	result *R
	err    *ResponseError[E]
}

// NewResult builds a success content.
func NewResult[R, E any](result R) ResponseContent[R, E] {
	return ResponseContent[R, E]{result: &result}
}

// NewError builds an error content.
func NewError[R, E any](err ResponseError[E]) ResponseContent[R, E] {
	return ResponseContent[R, E]{err: &err}
}

// Result returns the result variant. ok is false for an error content.
func (c ResponseContent[R, E]) Result() (result R, ok bool) {
	if c.result == nil {
		var zero R
		return zero, false
	}
	return *c.result, true
}

// Error returns the error variant. ok is false for a success content.
func (c ResponseContent[R, E]) Error() (err ResponseError[E], ok bool) {
	if c.err == nil {
		return ResponseError[E]{}, false
	}
	return *c.err, true
}

// ResponseError is the error member of a failed Response.
//
// Code carries the full signed integer range; the reserved ranges (-32768 to
// -32000 pre-defined, -32000 to -32099 implementation-defined server errors)
// are not interpreted here. Data, when nil, is omitted from the wire
// entirely rather than emitted as null.
type ResponseError[D any] struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    *D     `json:"data,omitempty"`
}

// Error implements the error interface so a ResponseError can travel as an
// ordinary Go error.
func (e ResponseError[D]) Error() string {
	return e.Message
}

type responseWire[R, E any] struct {
	Version string            `json:"jsonrpc"`
	Result  *R                `json:"result,omitempty"`
	Error   *ResponseError[E] `json:"error,omitempty"`
	ID      *uint64           `json:"id"`
}

// MarshalJSON encodes the response with the version tag first and the active
// content variant flattened next to jsonrpc and id, not nested under a
// wrapper key. Encoding a zero-value content fails with
// ErrNeitherResultNorError.
func (r Response[R, E]) MarshalJSON() ([]byte, error) {
	if r.Content.result == nil && r.Content.err == nil {
		return nil, ErrNeitherResultNorError
	}
	return json.Marshal(responseWire[R, E]{
		Version: Version,
		Result:  r.Content.result,
		Error:   r.Content.err,
		ID:      r.ID,
	})
}

type rawResponse struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
	ID     *uint64         `json:"id"`
}

// UnmarshalJSON decodes a response payload. Presence is judged on the raw
// members, so "result": null counts as a present result. A payload with both
// result and error, or with neither, fails decode; there is no defaulting to
// one side.
func (r *Response[R, E]) UnmarshalJSON(data []byte) error {
	var raw rawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Result != nil && raw.Error != nil:
		return ErrBothResultAndError
	case raw.Result == nil && raw.Error == nil:
		return ErrNeitherResultNorError
	case raw.Result != nil:
		var result R
		if err := json.Unmarshal(raw.Result, &result); err != nil {
			return err
		}
		r.Content = NewResult[R, E](result)
	default:
		var respErr ResponseError[E]
		if err := json.Unmarshal(raw.Error, &respErr); err != nil {
			return err
		}
		r.Content = NewError[R](respErr)
	}
	r.ID = raw.ID
	return nil
}
