// Package tutor drives a live tutoring session: it owns the connection
// state machine, wires microphone frames out and tutor audio back through
// the playback scheduler, folds transcription fragments into chat messages
// and handles barge-in interruptions.
package tutor

// State is the session connection state.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateError
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return "unknown"
}
