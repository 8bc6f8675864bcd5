package prompt

import "errors"

// ErrExitRequested is returned when the user types the exit command or the input is closed
var ErrExitRequested = errors.New("exit requested")
