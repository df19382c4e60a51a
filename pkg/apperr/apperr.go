// Package apperr classifies failures so the HTTP boundary can map them to
// status codes without inspecting their causes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindBadRequest
	KindUpstream
	KindUnconfigured
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
func BadRequest(msg string) error { return &Error{Kind: KindBadRequest, Msg: msg} }

// Upstream wraps a record-store or object-store failure. The cause is kept
// opaque and non-retryable. An already-classified error keeps its kind.
func Upstream(msg string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

// Unconfigured marks operations attempted without required credentials.
func Unconfigured(msg string) error { return &Error{Kind: KindUnconfigured, Msg: msg} }

// KindOf reports the classification of err, or KindUnknown when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
