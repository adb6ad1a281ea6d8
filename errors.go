package rainbowgif

import "errors"

// Sentinel error classes. Every error returned by this package matches
// exactly one of them with errors.Is.
var (
	// ErrInvalidInput reports arguments that can never succeed, such as
	// empty text or a non-positive size.
	ErrInvalidInput = errors.New("rainbowgif: invalid input")

	// ErrResource reports a font that is missing, unreadable or unparsable.
	ErrResource = errors.New("rainbowgif: resource unavailable")

	// ErrIO reports a failure writing the animation.
	ErrIO = errors.New("rainbowgif: write failed")
)

// InvalidInputError describes a rejected argument.
type InvalidInputError struct {
	Field  string // argument name, e.g. "text" or "band width"
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *InvalidInputError) Error() string {
	msg := "rainbowgif: invalid " + e.Field + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// ResourceError reports a font resource that could not be used.
type ResourceError struct {
	Path string // empty for the bundled font
	Err  error
}

func (e *ResourceError) Error() string {
	name := e.Path
	if name == "" {
		name = "bundled font"
	}
	return "rainbowgif: font " + name + ": " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Is reports whether target is ErrResource.
func (e *ResourceError) Is(target error) bool { return target == ErrResource }

// IOError reports a failed output operation.
type IOError struct {
	Op   string // "create", "encode", "sync", "close" or "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "rainbowgif: " + e.Op + ": " + e.Err.Error()
	}
	return "rainbowgif: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }
