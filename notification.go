package jsonrpc2

import "encoding/json"

// Notification represents an rpc call that expects no reply. It is a Request
// with the id member permanently absent: the key itself never appears on the
// wire, which is what distinguishes a notification from a call (an explicit
// null id means something else entirely, see Response).
type Notification[P any] struct {
	Method string
	Params P
}

// NewNotification builds a Notification.
func NewNotification[P any](method string, params P) Notification[P] {
	return Notification[P]{
		Method: method,
		Params: params,
	}
}

type notificationWire[P any] struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  P      `json:"params"`
}

// MarshalJSON encodes the notification with the version tag injected first
// and no id member.
func (n Notification[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(notificationWire[P]{
		Version: Version,
		Method:  n.Method,
		Params:  n.Params,
	})
}

// UnmarshalJSON decodes a notification payload. An id member, if present, is
// ignored rather than rejected.
func (n *Notification[P]) UnmarshalJSON(data []byte) error {
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
	n.Method = *raw.Method
	n.Params = params
	return nil
}
