package httperr

import "errors"

// Business error codes. Each one is a failure kind the caller can act on.
const (
	CodeNotFound              = "not_found"
	CodeSlotConflict          = "slot_conflict"
	CodeInvalidTimeWindow     = "invalid_time_window"
	CodePastDateTime          = "past_date_time"
	CodeInvalidDateTime       = "invalid_date_or_time"
	CodeInvalidService        = "invalid_service"
	CodeEmptyServiceSelection = "empty_service_selection"
	CodeDuplicateName         = "duplicate_name"
	CodeInvalidState          = "invalid_state"
	CodeUnauthorized          = "unauthorized"
	CodeInvalidRequest        = "invalid_request"
)

type BusinessError struct {
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessf(code, detail string) error {
	return BusinessError{Code: code, Detail: detail}
}

// ErrNotFound names the entity that did not resolve.
func ErrNotFound(entity string) error {
	return BusinessError{Code: CodeNotFound, Detail: entity}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
