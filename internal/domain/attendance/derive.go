package attendance

import (
	"strings"
	"time"
)

type EventKind int

const (
	// EventSubmission is raised when timesheet entries are written for a date.
	EventSubmission EventKind = iota + 1
	// EventDeclaration is an explicit Leave or Half-day declaration.
	EventDeclaration
)

// Event is a trigger fed to Derive.
type Event struct {
	Kind   EventKind
	Status Status
	Reason string
}

func SubmissionEvent() Event {
	return Event{Kind: EventSubmission}
}

func DeclarationEvent(status Status, reason string) Event {
	return Event{Kind: EventDeclaration, Status: status, Reason: reason}
}

// Derive decides the ledger row for (employeeID, date) given the row that
// currently exists, if any. The boolean result is false when the ledger must
// be left untouched.
//
// A submission only ever creates a Present row: the first write for the key
// wins and the time of day plays no part. A declaration always replaces
// whatever is stored, including a Present row from an earlier submission.
func Derive(employeeID string, date time.Time, existing *Record, ev Event) (Record, bool, error) {
	date = DateOf(date)

	switch ev.Kind {
	case EventSubmission:
		if existing != nil {
			return *existing, false, nil
		}
		return Record{
			EmployeeID: employeeID,
			Date:       date,
			Status:     StatusPresent,
			Reason:     ReasonWorkSubmitted,
		}, true, nil

	case EventDeclaration:
		if !ev.Status.IsDeclarable() {
			return Record{}, false, ErrInvalidDeclarationStatus
		}
		reason := strings.TrimSpace(ev.Reason)
		if reason == "" {
			return Record{}, false, ErrReasonRequired
		}
		return Record{
			EmployeeID: employeeID,
			Date:       date,
			Status:     ev.Status,
			Reason:     reason,
		}, true, nil
	}

	return Record{}, false, ErrUnknownEvent
}
