/*
Package stateiter implements lazy sequences driven by an explicit state-transition
function.

A Sequence holds a state value and a Transition. Every pull hands the current state
to the transition, which returns the next state, whether there is one, and the item
to emit:

	counter := stateiter.New(0, func(x int) (int, bool, int) {
		return x + 1, true, x
	})

A transition that reports no next state still emits its item. The sequence is
terminated from the following pull on, and the transition is never called again.

Sequences implement the Generator cursor protocol (Next, Value, Error) and can be
ranged over through All.
*/
package stateiter
