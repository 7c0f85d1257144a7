package flow

// State describes where a submission flow currently is. A single enum keeps
// illegal combinations (busy and errored at the same time) unrepresentable.
type State int

const (
	StateIdle State = iota
	StateBusy
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBusy:
		return "busy"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome shared by every flow in the client: a state, a
// user-facing message and, on success, the payload returned by the server.
type Result[T any] struct {
	State   State
	Message string
	Value   T
}

// Busy reports whether a request is currently in flight.
func (r Result[T]) Busy() bool {
	return r.State == StateBusy
}

// Failed reports whether the last attempt ended with an error.
func (r Result[T]) Failed() bool {
	return r.State == StateError
}

// Succeeded reports whether the last attempt completed successfully.
func (r Result[T]) Succeeded() bool {
	return r.State == StateSuccess
}

func success[T any](msg string, value T) Result[T] {
	return Result[T]{State: StateSuccess, Message: msg, Value: value}
}

func failure[T any](msg string) Result[T] {
	return Result[T]{State: StateError, Message: msg}
}
