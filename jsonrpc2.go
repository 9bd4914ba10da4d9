// Package jsonrpc2 implements the JSON-RPC 2.0 message types: Request,
// Notification and Response, together with their wire encoding.
//
// The package is a serialization contract layer only. It does not open
// connections, route methods or correlate outstanding calls; it maps
// in-memory values to wire payloads and back, enforcing the protocol's
// structural rules (the "2.0" version tag, result/error mutual exclusivity,
// omission of absent optional members) in the encode and decode paths
// themselves.
//
// All types are plain immutable values. Every encode and decode call is a
// pure transformation and is safe to run concurrently on distinct values.
package jsonrpc2

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the protocol version emitted under the "jsonrpc" key of every
// encoded message. It is injected by the encoders and is not a field of any
// message type, so it cannot be set wrong or forgotten by construction.
const Version = "2.0"

// Decode failures specific to this package. Malformed JSON and wrong member
// types surface as errors from encoding/json instead.
var (
	// ErrMissingMethod reports a request or notification payload without a
	// method member.
	ErrMissingMethod = errors.New("jsonrpc2: missing method member")

	// ErrBothResultAndError reports a response payload carrying both a result
	// and an error member.
	ErrBothResultAndError = errors.New("jsonrpc2: response has both result and error members")

	// ErrNeitherResultNorError reports a response payload carrying neither a
	// result nor an error member. It is also returned when encoding a
	// Response whose content was never set.
	ErrNeitherResultNorError = errors.New("jsonrpc2: response has neither result nor error member")

	// ErrVersionMismatch is returned by CheckVersion when the jsonrpc member
	// is absent or not exactly "2.0".
	ErrVersionMismatch = errors.New(`jsonrpc2: jsonrpc member is not "2.0"`)
)

// NewID wraps an id value for the optional-id slot of Request and Response.
func NewID(id uint64) *uint64 {
	return &id
}

// VersionOf reports the raw value of the jsonrpc member of an encoded
// message. ok is false when the member is absent. Decoding in this package
// never checks the tag itself; strictness is the caller's policy.
func VersionOf(data []byte) (version string, ok bool, err error) {
	var probe struct {
		Version *string `json:"jsonrpc"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", false, err
	}
	if probe.Version == nil {
		return "", false, nil
	}
	return *probe.Version, true, nil
}

// CheckVersion verifies that an encoded message carries a jsonrpc member
// equal to Version. Callers that want strict peers run it before decoding.
func CheckVersion(data []byte) error {
	version, ok, err := VersionOf(data)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: member absent", ErrVersionMismatch)
	}
	if version != Version {
		return fmt.Errorf("%w: got %q", ErrVersionMismatch, version)
	}
	return nil
}
