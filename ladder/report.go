package ladder

import (
	"errors"
	"log/slog"
)

var (
	// ErrSameWord is reported when the start and end words are identical once
	// lowercased.
	ErrSameWord = errors.New("ladder: start and end words are the same")

	// ErrNotInDictionary is reported when the end word is not in the
	// dictionary.
	ErrNotInDictionary = errors.New("ladder: end word must be in the dictionary")
)

// Reporter receives the reason why Search rejected its input words. The words
// are passed as given by the caller, before lowercasing.
type Reporter func(start string, end string, err error)

// LogReporter returns a Reporter that logs rejections on logger at warn level.
func LogReporter(logger *slog.Logger) Reporter {
	return func(start string, end string, err error) {
		logger.Warn("word ladder rejected", "start", start, "end", end, "error", err)
	}
}

func (r Reporter) report(start string, end string, err error) {
	if r != nil {
		r(start, end, err)
	}
}
