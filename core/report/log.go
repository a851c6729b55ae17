package report

// Log is a Sink that keeps every event in memory.
type Log struct {
	events []Event
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Emit appends e.
func (l *Log) Emit(e Event) {
	l.events = append(l.events, e)
}

// Events returns the recorded events in emission order.
func (l *Log) Events() []Event {
	return l.events
}

// Count returns how many events of kind k were recorded.
func (l *Log) Count(k Kind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Warnings returns the events whose kind is a warning.
func (l *Log) Warnings() []Event {
	var out []Event
	for _, e := range l.events {
		if e.Kind.Warning() {
			out = append(out, e)
		}
	}
	return out
}
