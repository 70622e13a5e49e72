package animation

import "errors"

// Sink consumes frames in increasing time order
// Present is called sequentially from the driver loop and must not retain frame.Field
type Sink interface {
	Present(frame Frame) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(frame Frame) error

func (f SinkFunc) Present(frame Frame) error { return f(frame) }

// Tee presents every frame to all sinks in order, errors are joined
type Tee []Sink

func (t Tee) Present(frame Frame) error {
	var errs []error
	for _, s := range t {
		if s == nil {
			continue
		}
		if err := s.Present(frame); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
