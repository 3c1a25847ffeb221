package workflow

import "context"

// Transition advances a workflow value by one notification. Transitions are
// pure with respect to their input: they return a new value rather than
// mutating the one passed in.
type Transition[S any] func(context.Context, S) S

// Iterate drives a value to completion. On each round it checks done first,
// so a value that already satisfies the predicate is returned untouched and
// no work is scheduled. Otherwise it asks next for the ordered transitions of
// the following unit of work and folds over them strictly sequentially: each
// transition is applied, the result is reported to observe, and that result
// feeds the next transition. observe may be nil.
func Iterate[S any](
	ctx context.Context,
	next func(S) []Transition[S],
	done func(S) bool,
	observe func(S),
	start S,
) S {
	current := start
	for !done(current) {
		for _, transition := range next(current) {
			current = transition(ctx, current)
			if observe != nil {
				observe(current)
			}
		}
	}
	return current
}
