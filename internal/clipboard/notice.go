package clipboard

import "time"

// NoticeDuration is how long the "copied" confirmation stays visible.
const NoticeDuration = time.Second

// Notice is a transient confirmation message with debounced expiry. Each Show
// supersedes any pending expiry: only the latest sequence number clears it.
type Notice struct {
	text string
	seq  int
}

// Show sets the message and returns the sequence number its expiry must carry.
func (n *Notice) Show(text string) int {
	n.seq++
	n.text = text
	return n.seq
}

// Expire clears the message if seq belongs to the latest Show.
func (n *Notice) Expire(seq int) bool {
	if seq != n.seq {
		return false
	}
	n.text = ""
	return true
}

// Text returns the message currently shown.
func (n *Notice) Text() string {
	return n.text
}
