package tui

// engineUpdateMsg signals that the session engine changed state or
// transcript; the model re-snapshots on receipt.
type engineUpdateMsg struct{}

// connectResultMsg carries the outcome of a connection attempt.
type connectResultMsg struct {
	Err error
}

// subscriptionMsg carries the entitlement lookup result.
type subscriptionMsg struct {
	Subscribed bool
}

// spectrumTickMsg drives the playback visualizer refresh.
type spectrumTickMsg struct{}

// exportDoneMsg carries the outcome of a study sheet export.
type exportDoneMsg struct {
	Path string
	Err  error
}

// clearNoticeMsg clears a transient notice after a timeout.
type clearNoticeMsg struct{}
