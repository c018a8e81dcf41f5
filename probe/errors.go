package probe

import "errors"

var (
	ErrExceededMaxLatency    = errors.New("probe: operation took too long")
	ErrIncorrectResolution   = errors.New("probe: incorrect permission resolution")
	ErrTemporaryGrantMissing = errors.New("probe: temporary grant did not resolve")
)
