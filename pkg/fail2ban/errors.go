package fail2ban

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJailName indicates a jail name that failed input sanitization.
	ErrInvalidJailName = errors.New("invalid jail name")

	// ErrJailNotFound indicates fail2ban-client rejected the jail name.
	ErrJailNotFound = errors.New("jail not found")

	// ErrUnavailable indicates the fail2ban-client invocation failed,
	// timed out, or the binary is missing.
	ErrUnavailable = errors.New("fail2ban service unavailable")
)

// ParseError reports fail2ban-client output the parser did not recognize.
// It usually means the installed fail2ban version formats its status
// output differently than expected.
type ParseError struct {
	Label  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("unrecognized fail2ban-client output: %s (%q)", e.Reason, e.Label)
	}
	return fmt.Sprintf("unrecognized fail2ban-client output: %s", e.Reason)
}
