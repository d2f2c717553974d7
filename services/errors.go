package services

import (
	"errors"
	"fmt"
)

// Kind groups errors by how the caller should react.
type Kind string

const (
	KindUnknown         Kind = ""
	KindGatingViolation Kind = "gating_violation"
	KindNotFound        Kind = "not_found"
	KindRangeViolation  Kind = "range_violation"
	KindSchemaRecovery  Kind = "schema_recovery"
)

var (
	ErrMissionNotFound   = errors.New("mission not found")
	ErrMissionLocked     = errors.New("mission locked")
	ErrPointsOutOfRange  = errors.New("points out of range")
	ErrAlreadyVoted      = errors.New("already voted")
	ErrTrialExpired      = errors.New("trial expired")
	ErrTrialConcluded    = errors.New("trial already concluded")
	ErrInsufficientHonor = errors.New("insufficient honor")
	ErrBuyInNotFound     = errors.New("buy-in not found")
	ErrBuyInUnavailable  = errors.New("buy-in unavailable")
	ErrBuyInRequired     = errors.New("buy-in choice required")
	ErrTrialNotFound     = errors.New("trial not found")
	ErrDebtNotFound      = errors.New("debt not found")
	ErrInvalidVerdict    = errors.New("invalid verdict")
	ErrInvalidTrial      = errors.New("invalid trial")
	ErrBadgeNotFound     = errors.New("badge not found")
	ErrRemoteUnavailable = errors.New("shared store not configured")
)

var sentinelKinds = map[error]Kind{
	ErrMissionNotFound:   KindNotFound,
	ErrMissionLocked:     KindGatingViolation,
	ErrPointsOutOfRange:  KindRangeViolation,
	ErrAlreadyVoted:      KindGatingViolation,
	ErrTrialExpired:      KindGatingViolation,
	ErrTrialConcluded:    KindGatingViolation,
	ErrInsufficientHonor: KindGatingViolation,
	ErrBuyInNotFound:     KindNotFound,
	ErrBuyInUnavailable:  KindGatingViolation,
	ErrBuyInRequired:     KindRangeViolation,
	ErrTrialNotFound:     KindNotFound,
	ErrDebtNotFound:      KindNotFound,
	ErrInvalidVerdict:    KindRangeViolation,
	ErrInvalidTrial:      KindRangeViolation,
	ErrBadgeNotFound:     KindNotFound,
	ErrRemoteUnavailable: KindNotFound,
}

// Error carries the operation and kind alongside a sentinel.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// newError wraps a sentinel with its registered kind.
func newError(op string, err error) error {
	return &Error{Kind: sentinelKinds[err], Op: op, Err: err}
}

// newErrorf wraps a sentinel and adds detail.
func newErrorf(op string, err error, format string, args ...any) error {
	return &Error{
		Kind: sentinelKinds[err],
		Op:   op,
		Err:  fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)),
	}
}

// KindOf extracts the kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindUnknown {
		return e.Kind
	}
	for sentinel, kind := range sentinelKinds {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}
