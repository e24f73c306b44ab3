package scenario

import "errors"

var (
	ErrInvalidScenario   = errors.New("invalid scenario")
	ErrFailedToParseYAML = errors.New("failed to parse scenario yaml")
	ErrFailedToReadFile  = errors.New("failed to read scenario file")
	ErrUnknownScenario   = errors.New("unknown builtin scenario")
	ErrExpectationFailed = errors.New("scenario expectation failed")
	ErrScenarioCancelled = errors.New("scenario cancelled")
)
