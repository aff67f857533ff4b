package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rackhd/redfish-gateway/internal/entity"
)

// Kind classifies usecase failures for the HTTP layer.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindMethodNotAllowed
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindBadRequest:
		return "BadRequest"
	case KindMethodNotAllowed:
		return "MethodNotAllowed"
	case KindNotImplemented:
		return "NotImplemented"
	default:
		return "Internal"
	}
}

// ErrAssertion marks malformed identifiers and missing OBM settings.
var ErrAssertion = errors.New("invalid resource")

// Error is a classified usecase failure. Message is safe to return to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound -.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest -.
func BadRequest(format string, args ...interface{}) error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// MethodNotAllowed -.
func MethodNotAllowed(format string, args ...interface{}) error {
	return &Error{Kind: KindMethodNotAllowed, Message: fmt.Sprintf(format, args...)}
}

// NotImplemented -.
func NotImplemented(format string, args ...interface{}) error {
	return &Error{Kind: KindNotImplemented, Message: fmt.Sprintf(format, args...)}
}

// InvalidResource reports a failed assertion as NotFound.
// An empty detail yields the bare "invalid resource" message.
func InvalidResource(detail string) error {
	msg := ErrAssertion.Error()
	if detail != "" {
		msg += ": " + detail
	}

	return &Error{Kind: KindNotFound, Message: msg, Err: ErrAssertion}
}

// lookupSentinels are the repository errors reported as NotFound.
var lookupSentinels = []error{
	entity.ErrNodeNotFound,
	entity.ErrCatalogNotFound,
	entity.ErrPollerNotFound,
	entity.ErrObmNotFound,
	entity.ErrWorkflowNotFound,
	ErrAssertion,
}

// KindOf classifies err. Lookup sentinels from the repositories count as NotFound.
func KindOf(err error) Kind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}

	if lookupSentinel(err) != nil {
		return KindNotFound
	}

	return KindInternal
}

// MessageOf returns the client-facing message for err. For lookup failures
// this is the repository message, without the wrapping added by callers.
func MessageOf(err error) string {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Error()
	}

	if sentinel := lookupSentinel(err); sentinel != nil {
		for e := err; e != nil; e = errors.Unwrap(e) {
			if strings.HasPrefix(e.Error(), sentinel.Error()) {
				return e.Error()
			}
		}

		return sentinel.Error()
	}

	return err.Error()
}

// Lookup turns a failed repository lookup into a NotFound Error carrying the
// client-facing message. Other errors pass through unchanged.
func Lookup(err error) error {
	if err == nil {
		return nil
	}

	var ue *Error
	if errors.As(err, &ue) || lookupSentinel(err) == nil {
		return err
	}

	return &Error{Kind: KindNotFound, Message: MessageOf(err), Err: err}
}

func lookupSentinel(err error) error {
	for _, sentinel := range lookupSentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	return nil
}
