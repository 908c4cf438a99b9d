// Package fail2ban wraps the fail2ban-client command-line tool.
//
// It covers the three read-only queries the HTTP API exposes:
//   - overall service status (jail count and jail names)
//   - per-jail status (filter and action counters, banned IP list)
//   - service version
//
// Each query spawns one fail2ban-client process with an explicit argument
// vector, captures its output, and parses the line-oriented text into a
// typed record. There is no shell involved at any point and no state kept
// between calls.
//
// # Example Usage
//
//	client := fail2ban.NewClient(fail2ban.DefaultConfig())
//
//	status, err := client.Status(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(status.NumberOfJails, status.JailList)
//
// # Error Model
//
// Failures are classified so the HTTP layer can map them to status codes:
//   - ErrInvalidJailName: the jail name failed input sanitization
//   - ErrJailNotFound: fail2ban-client rejected the jail name
//   - ErrUnavailable: the subprocess failed, timed out, or is missing
//   - *ParseError: the output format was not recognized
//
// The stderr wording fail2ban uses to report an unknown jail differs
// between releases; the substrings used to detect it are configurable
// through Config.NotFoundMarkers.
package fail2ban
