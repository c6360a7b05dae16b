package pinboard

import (
	"fmt"
	"os"
)

// logf writes a prefixed line to stderr. Used for failures that have no
// caller to return an error to.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[pinboard] "+format+"\n", args...)
}

// debugf logs only when the scene is in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	logf(format, args...)
}
