package entity

import "errors"

// Domain error taxonomy. The HTTP mapping lives in serverutils.
var (
	// ErrSessionNotFound: no session exists for the user id yet. A normal
	// outcome for first-time visitors, not an operator-visible failure.
	ErrSessionNotFound = errors.New("user session not found")

	// ErrMalformedPayload: the submission payload is missing the hidden user
	// identifier or is otherwise unusable. No session is created.
	ErrMalformedPayload = errors.New("payload is missing a valid user id")

	// ErrTranscriptUnavailable: the external transcript fetch failed or came
	// back empty. Previously accumulated transcript data is never affected.
	ErrTranscriptUnavailable = errors.New("conversation transcript is not available")
)
