package pipeline

import "errors"

var (
	// ErrPointSpriteUnsupported is returned when point sprite coordinates
	// are requested on a context without the point-sprite capability.
	ErrPointSpriteUnsupported = errors.New("pipeline: point sprites not supported")

	// ErrInvalidCombine is returned for a combine function that is not
	// valid on the channel it was given for.
	ErrInvalidCombine = errors.New("pipeline: invalid combine function")

	// ErrShaderCompile wraps a shader compilation failure.
	ErrShaderCompile = errors.New("pipeline: shader compilation failed")
)
