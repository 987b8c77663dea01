package generators

// State is an immutable conversation. Decorators wrap another State and expose it with Unwrap.
type State interface {
	Contents() []*Content
	AppendContent(*Content) (State, error)
	SystemPrompt() string
	Flush() (State, error)
	Unwrap() State
}

func As[T State](state State) (ret T, ok bool) {
	for state != nil {
		if ret, ok = state.(T); ok {
			return
		}
		state = state.Unwrap()
	}
	return
}
