package tui

import "errors"

// ErrAborted reports that the user backed out of the session, usually with
// Ctrl+C.
var ErrAborted = errors.New("tui: aborted")
