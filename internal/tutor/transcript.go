package tutor

import (
	"sync"

	"github.com/trendolabs/trendospeak/pkg/live"
)

// Message is one stable transcript entry. IDs are assigned at creation and
// never change; entries are append-only and never reordered.
type Message struct {
	ID      int64
	Speaker live.Speaker
	Text    string
	Final   bool
}

// Transcript folds a stream of (speaker, fragment, final) events into chat
// messages. Consecutive non-final fragments from the same speaker extend
// the tail message in place; anything else starts a new one.
type Transcript struct {
	mu     sync.Mutex
	msgs   []Message
	nextID int64
}

// Append applies one fragment in arrival order.
func (t *Transcript) Append(speaker live.Speaker, fragment string, final bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.msgs); n > 0 {
		tail := &t.msgs[n-1]
		if tail.Speaker == speaker && !tail.Final {
			tail.Text += fragment
			tail.Final = final
			return
		}
	}
	t.nextID++
	t.msgs = append(t.msgs, Message{
		ID:      t.nextID,
		Speaker: speaker,
		Text:    fragment,
		Final:   final,
	})
}

// Messages returns a snapshot of the transcript.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// Len reports the current message count.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.msgs)
}
