package recommend

// State is the observable status of the recommendation panel. It is
// exactly one of Idle, Loading, Ready or Failed.
type State interface {
	isState()
}

// Idle is the state before the first fetch.
type Idle struct{}

// Loading means a fetch is in flight.
type Loading struct{}

// Ready holds the suggestions to render. Suggestions is never nil.
// MissingCredential is set when no usable API key was configured and the
// list is the offline fallback.
type Ready struct {
	Suggestions       []Suggestion
	MissingCredential bool
}

// Failed means the fetch did not produce suggestions. Fallback is always
// non-empty so the panel has something to show.
type Failed struct {
	Err      *Error
	Fallback []Suggestion
}

// Reason is the human-readable failure message.
func (f Failed) Reason() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Reason
}

func (Idle) isState()    {}
func (Loading) isState() {}
func (Ready) isState()   {}
func (Failed) isState()  {}

// Suggestions returns whatever list the state renders: the parsed list
// for Ready, the fallback for Failed, nil otherwise.
func Suggestions(s State) []Suggestion {
	switch st := s.(type) {
	case Ready:
		return st.Suggestions
	case Failed:
		return st.Fallback
	}
	return nil
}
