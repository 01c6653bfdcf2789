package call

import "errors"

var (
	// ErrCallNotFound means the upstream response contained no record for
	// the requested call id.
	ErrCallNotFound = errors.New("call not found")

	// ErrTranscriptNotFound means the transcript filter matched nothing,
	// or the call has no transcript data.
	ErrTranscriptNotFound = errors.New("transcript not found")
)
