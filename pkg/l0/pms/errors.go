package pms

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed read.
type ErrorKind int

const (
	// NoError means the last read succeeded.
	NoError ErrorKind = iota
	// SyncTimeout means the frame signature was not seen in time.
	SyncTimeout
	// ZeroLength means the declared length field is zero.
	ZeroLength
	// BodyTimeout means the frame body was not fully received, either
	// because the time budget expired or the frame exceeds the buffer.
	BodyTimeout
	// ChecksumError means the computed checksum mismatches the transmitted one.
	ChecksumError
	// SignatureError means the signature re-check after validation failed.
	SignatureError
	// SourceError means the byte source or command writer failed.
	SourceError
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "ok"
	case SyncTimeout:
		return "sync timeout"
	case ZeroLength:
		return "zero length"
	case BodyTimeout:
		return "body timeout"
	case ChecksumError:
		return "checksum error"
	case SignatureError:
		return "signature error"
	case SourceError:
		return "source error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ReadError is returned by a failed read.
type ReadError struct {
	Kind ErrorKind
	// Variant is only meaningful for ChecksumError.
	Variant Variant
	Msg     string
	Err     error
}

// Error implements error.
func (e *ReadError) Error() string {
	msg := e.Kind.String()
	if e.Kind == ChecksumError {
		msg += " (" + e.Variant.String() + ")"
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is matches any ReadError of the same kind, so the sentinels below work
// with errors.Is.
func (e *ReadError) Is(target error) bool {
	t, ok := target.(*ReadError)
	return ok && t.Kind == e.Kind
}

// Code returns the numeric error code used by the Arduino driver:
// 1 sync timeout, 2 zero length, 3 body timeout, 4 checksum (PMS5003T),
// 5 checksum (PMS3003), 6 signature. Source errors have no legacy code and
// report -1.
func (e *ReadError) Code() int {
	switch e.Kind {
	case SyncTimeout:
		return 1
	case ZeroLength:
		return 2
	case BodyTimeout:
		return 3
	case ChecksumError:
		if e.Variant == Compact {
			return 5
		}
		return 4
	case SignatureError:
		return 6
	case NoError:
		return 0
	}
	return -1
}

var (
	// ErrSyncTimeout matches reads failed with SyncTimeout.
	ErrSyncTimeout = &ReadError{Kind: SyncTimeout}
	// ErrZeroLength matches reads failed with ZeroLength.
	ErrZeroLength = &ReadError{Kind: ZeroLength}
	// ErrBodyTimeout matches reads failed with BodyTimeout.
	ErrBodyTimeout = &ReadError{Kind: BodyTimeout}
	// ErrChecksum matches reads failed with ChecksumError.
	ErrChecksum = &ReadError{Kind: ChecksumError}
	// ErrSignature matches reads failed with SignatureError.
	ErrSignature = &ReadError{Kind: SignatureError}
	// ErrSource matches reads failed with SourceError.
	ErrSource = &ReadError{Kind: SourceError}

	// ErrNoData indicates no valid reading is stored.
	ErrNoData = errors.New("no data")
	// ErrNotSupported indicates the stored reading's variant lacks the field.
	ErrNotSupported = errors.New("not supported by variant")
	// ErrStarted indicates timing is changed after the sensor was started.
	ErrStarted = errors.New("sensor already started")
)

// KindOf extracts the ErrorKind from err. nil maps to NoError, errors
// which are not ReadError map to SourceError.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}
	var re *ReadError
	if errors.As(err, &re) {
		return re.Kind
	}
	return SourceError
}
