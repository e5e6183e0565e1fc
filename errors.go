package replay

import "errors"

// Drawing results are reported through ordinary error returns. A nil error
// means the target executed the primitive natively. Three sentinels carry
// informational outcomes rather than failures; callers distinguish them with
// errors.Is. Anything else is a hard error that aborts a replay.
var (
	// ErrUnsupported is returned by a target that cannot perform the
	// requested primitive. Callers may fall back to a more generic path.
	ErrUnsupported = errors.New("replay: operation unsupported by target")

	// ErrNothingToDo is returned when an operation degenerates to a no-op,
	// for example because a clip reduced it to an empty region. It is a
	// successful outcome, not a failure.
	ErrNothingToDo = errors.New("replay: nothing to do")

	// ErrImageFallback is returned by a classifying target when the
	// primitive would be executed via an image fallback rather than a
	// native path. It is a successful outcome carrying a classification.
	ErrImageFallback = errors.New("replay: image fallback")

	// ErrSurfaceFinished is returned when a recording surface is mutated
	// or replayed after Finish.
	ErrSurfaceFinished = errors.New("replay: surface is finished")

	// ErrTypeMismatch is returned when an operation that requires a
	// recording source is given something else.
	ErrTypeMismatch = errors.New("replay: surface type mismatch")

	// ErrInvalidIndex is returned when a single-command replay names an
	// index outside the command log.
	ErrInvalidIndex = errors.New("replay: command index out of range")
)

// IsHardError reports whether err is a genuine failure rather than one of
// the informational outcomes (nil, nothing-to-do, image-fallback).
func IsHardError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrNothingToDo) && !errors.Is(err, ErrImageFallback)
}
