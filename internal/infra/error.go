package infra

import (
	"context"
	"errors"
	"log/slog"

	"amhara-checkout/internal/pkg/errs"
)

type RailErrorKind string

// RailError is returned by rail adapters so the coordinator can tell a
// retry-worthy transport failure from a business-level refusal.
type RailError struct {
	Kind RailErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RailError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RailError) Unwrap() error {
	return e.err
}

// Message is the rail-facing reason without the kind prefix or cause chain.
func (e RailError) Message() string {
	return e.msg
}

func WrapRailErr(slogger *slog.Logger, kind RailErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	level := slog.LevelWarn
	if kind == KindRailUnavailable {
		level = slog.LevelError
	}
	slogger.Log(context.Background(), level, "Rail error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return errs.Mark(RailError{Kind: kind, msg: msg, err: err}, markerFor(kind))
}

func markerFor(kind RailErrorKind) error {
	switch kind {
	case KindDeclined:
		return errs.ErrDeclined
	case KindMalformed:
		return errs.ErrMalformed
	default:
		return errs.ErrRailUnavailable
	}
}

func IsKind(err error, kind RailErrorKind) bool {
	var e RailError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// RailMessage returns the rail-facing reason, or err.Error() for foreign errors.
func RailMessage(err error) string {
	var e RailError
	if errors.As(err, &e) {
		return e.msg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Rail-specific error kinds
const (
	KindMalformed       RailErrorKind = "MALFORMED"
	KindRailUnavailable RailErrorKind = "RAIL_UNAVAILABLE"
	KindDeclined        RailErrorKind = "DECLINED"
)
