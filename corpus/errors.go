package corpus

import "errors"

var (
	// ErrMalformedLine indicates a transcription row with too few fields.
	ErrMalformedLine = errors.New("corpus: malformed transcription line")
	// ErrEmptySource indicates a reader was constructed over empty input.
	ErrEmptySource = errors.New("corpus: empty transcription source")
)
