package payment

import "github.com/samber/lo"

// allowedTransitions maps each state to the states it may move to.
var allowedTransitions = map[State][]State{
	StateIdle: {
		StateFieldsPending,
	},
	StateFieldsPending: {
		StateSubmitting,
		StateCancelled,
	},
	StateSubmitting: {
		StateAwaitingRedirectCompletion,
		StateCompleted,
		StateFailed,
		StateCancelled,
	},
	StateAwaitingRedirectCompletion: {
		StateVerifying,
		StateCancelled,
	},
	StateVerifying: {
		StateCompleted,
		StateFailed,
	},
	StateCompleted: {},
	StateFailed:    {},
	StateCancelled: {},
}

func CanTransition(from, to State) bool {
	return lo.Contains(allowedTransitions[from], to)
}

func CanCancel(from State) bool {
	return CanTransition(from, StateCancelled)
}
