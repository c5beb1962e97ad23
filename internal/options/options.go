// Package options implements generic functional options.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

type optionFunc[T any] func(T) error

func (fn optionFunc[T]) apply(target T) error {
	return fn(target)
}

// New wraps a fallible configuration function into an Option.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T](fn)
}

// NoError wraps a configuration function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return optionFunc[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
