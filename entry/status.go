package entry

import (
	"fmt"
	"strings"
)

// Status is the outcome code of a delivery, loosely modeled on HTTP status
// classes compressed into one byte.
type Status uint8

// Delivery outcomes.
const (
	Missing   Status = 0  // no data recorded
	Postponed Status = 1  // cancelled and renewed as a new delivery
	OK        Status = 10 // delivered
	Failed    Status = 20 // not delivered within the deadline
	Timeout   Status = 21 // exceeded the deadline by more than ten minutes
	Rejected  Status = 22 // deliverable judged subpar
	Absent    Status = 40 // delivered but recipient missing
	Refused   Status = 41 // recipient declined a sound deliverable
)

// Class groups statuses by their tens digit range.
type Class uint8

// Status classes.
const (
	ClassNone Class = iota
	ClassInformational
	ClassSuccessful
	ClassSenderError
	ClassRecipientError
)

var statusNames = map[Status]string{
	Missing:   "missing",
	Postponed: "postponed",
	OK:        "ok",
	Failed:    "failed",
	Timeout:   "timeout",
	Rejected:  "rejected",
	Absent:    "absent",
	Refused:   "refused",
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Class returns the status class.
func (s Status) Class() Class {
	switch {
	case s == 0:
		return ClassNone
	case s < 10:
		return ClassInformational
	case s < 20:
		return ClassSuccessful
	case s < 40:
		return ClassSenderError
	default:
		return ClassRecipientError
	}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("status(%d)", uint8(s))
}

// ParseStatus parses a status name, case-insensitively.
func ParseStatus(name string) (Status, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}

	return Missing, fmt.Errorf("%q: %w", name, ErrBadStatus)
}

func (c Class) String() string {
	switch c {
	case ClassInformational:
		return "informational"
	case ClassSuccessful:
		return "successful"
	case ClassSenderError:
		return "sender-error"
	case ClassRecipientError:
		return "recipient-error"
	default:
		return "none"
	}
}
