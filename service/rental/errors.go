package rental

import "errors"

// errors used by controllers

type ErrCode string

const (
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrAlreadyOwned    ErrCode = "ALREADY_OWNED"
	ErrBookUnavailable ErrCode = "BOOK_UNAVAILABLE"
	ErrInvalidPeriod   ErrCode = "INVALID_PERIOD"
	ErrUnauthorized    ErrCode = "UNAUTHORIZED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
