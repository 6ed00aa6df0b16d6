package stateiter

import "iter"

// Generator is the cursor protocol shared by sequences and adapters.
type Generator[T any] interface {
	Next() bool
	Value() T
	Error() error
}

// Transition maps the current state to the next state and an item.
// more is false when there is no next state; item is emitted either way.
type Transition[S, T any] func(state S) (next S, more bool, item T)

// Step calls t.
func (t Transition[S, T]) Step(state S) (S, bool, T) {
	return t(state)
}

// Stepper is the function-object form of a Transition.
type Stepper[S, T any] interface {
	Step(state S) (next S, more bool, item T)
}

type puller[T any] interface {
	pull() (T, bool)
}

// slot owns the state between pulls. live is false once the sequence terminated.
// stepping is set while the stepper runs; a pull that sees it sets cut, and a
// cut slot is never refilled.
type slot[S, T any] struct {
	state    S
	live     bool
	stepping bool
	cut      bool
	stepper  Stepper[S, T]
}

func (s *slot[S, T]) pull() (item T, ok bool) {
	if s.stepping {
		s.cut = true
	}
	if !s.live {
		return item, false
	}
	var zero S
	state := s.state
	s.state, s.live = zero, false

	s.stepping = true
	next, more, item := s.stepper.Step(state)
	s.stepping = false
	if more && !s.cut {
		s.state, s.live = next, true
	}
	return item, true
}

type terminated[T any] struct{}

func (terminated[T]) pull() (item T, ok bool) { return }

// Sequence is a single-pass lazy sequence. It must not be pulled from
// multiple goroutines at once.
type Sequence[T any] struct {
	src   puller[T]
	value T
}

// New returns a sequence starting at initial. transition is not called until
// the first pull.
func New[S, T any](initial S, transition Transition[S, T]) *Sequence[T] {
	return NewStepper[S, T](initial, transition)
}

// NewStepper is like New but takes a Stepper.
func NewStepper[S, T any](initial S, stepper Stepper[S, T]) *Sequence[T] {
	return &Sequence[T]{src: &slot[S, T]{
		state:   initial,
		live:    true,
		stepper: stepper,
	}}
}

// Empty returns a sequence that is already terminated.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{src: terminated[T]{}}
}

// Pull advances the sequence. ok is false once the sequence is terminated,
// and stays false for every later call. Pulling from inside the sequence's
// own transition terminates it; the outer pull still returns its item.
func (s *Sequence[T]) Pull() (item T, ok bool) {
	return s.src.pull()
}

// Next pulls the next item into Value and reports whether there was one.
func (s *Sequence[T]) Next() bool {
	value, ok := s.Pull()
	s.value = value
	return ok
}

// Value returns the item pulled by the last call to Next.
func (s *Sequence[T]) Value() T {
	return s.value
}

// Error always returns nil. Termination is not an error.
func (s *Sequence[T]) Error() error {
	return nil
}

// All returns an iterator over the remaining items. It shares the cursor with
// s, so breaking out of a range loop leaves the rest for later pulls.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := s.Pull()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
