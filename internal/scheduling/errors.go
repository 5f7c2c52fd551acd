// Package scheduling implements the appointment business rules: the ordered
// validation chains run before scheduling or cancelling, the time-interval
// conflict detector and the error taxonomy the rules report with.
package scheduling

// ViolationError is a business-rule rejection. It is a client-side error:
// the request was understood but breaks a clinic constraint.
type ViolationError struct {
	msg string
}

func (e *ViolationError) Error() string {
	return e.msg
}

// Violation builds a ViolationError with the given reason.
func Violation(msg string) error {
	return &ViolationError{msg: msg}
}

// NotFoundError reports that a referenced patient, doctor or appointment
// does not exist or is inactive. Kept distinct from rule violations.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

// NotFound builds a NotFoundError with the given message.
func NotFound(msg string) error {
	return &NotFoundError{msg: msg}
}
