package jsonrpc2

import "encoding/json"

// Request represents an rpc call to a server.
//
// P is the parameter payload, commonly a slice for positional parameters or a
// struct for named ones. Params is not optional: a method that takes no
// parameters uses struct{}{} (or another empty payload) for P.
//
// ID correlates the call with its Response. A nil ID means the id member is
// omitted from the wire entirely, which per the protocol makes the payload
// indistinguishable from a Notification; Notification is the type to use when
// that is the intent.
type Request[P any] struct {
	Method string
	Params P
	ID     *uint64
}

// NewRequest builds a Request. Pass NewID(n) for a correlated call or nil for
// an id-less one.
func NewRequest[P any](method string, params P, id *uint64) Request[P] {
	return Request[P]{
		Method: method,
		Params: params,
		ID:     id,
	}
}

type requestWire[P any] struct {
	Version string  `json:"jsonrpc"`
	Method  string  `json:"method"`
	Params  P       `json:"params"`
	ID      *uint64 `json:"id,omitempty"`
}

// MarshalJSON encodes the request with the version tag injected first and the
// id member omitted when ID is nil.
func (r Request[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(requestWire[P]{
		Version: Version,
		Method:  r.Method,
		Params:  r.Params,
		ID:      r.ID,
	})
}

type rawRequest struct {
	Method *string         `json:"method"`
	Params json.RawMessage `json:"params"`
	ID     *uint64         `json:"id"`
}

// UnmarshalJSON decodes a request payload. An absent id member and an
// explicit null id both decode to a nil ID; a string or negative id fails.
// The jsonrpc member is not checked here, see CheckVersion.
func (r *Request[P]) UnmarshalJSON(data []byte) error {
	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Method == nil {
		return ErrMissingMethod
	}
	var params P
	if raw.Params != nil {
		if err := json.Unmarshal(raw.Params, &params); err != nil {
			return err
		}
	}
	r.Method = *raw.Method
	r.Params = params
	r.ID = raw.ID
	return nil
}
