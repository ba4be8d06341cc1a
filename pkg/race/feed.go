package race

import "time"

// Feed keeps the latest event messages for an on-screen log
type Feed struct {
	// Now is the clock used to expire lines, time.Now when nil
	Now func() time.Time

	max   int
	ttl   time.Duration
	lines []feedLine
}

type feedLine struct {
	text string
	at   time.Time
}

// NewFeed keeps at most max lines, each for ttl
func NewFeed(max int, ttl time.Duration) *Feed {
	return &Feed{max: max, ttl: ttl}
}

func (f *Feed) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Feed) Log(ev Event) {
	msg := ev.Message()
	if msg == "" {
		return
	}
	f.lines = append(f.lines, feedLine{text: msg, at: f.now()})
	if len(f.lines) > f.max {
		f.lines = f.lines[len(f.lines)-f.max:]
	}
}

// Lines returns the messages that have not expired, oldest first
func (f *Feed) Lines() []string {
	now := f.now()
	live := f.lines[:0]
	for _, l := range f.lines {
		if now.Sub(l.at) < f.ttl {
			live = append(live, l)
		}
	}
	f.lines = live

	out := make([]string, len(live))
	for i, l := range live {
		out[i] = l.text
	}
	return out
}

// Clear drops every line
func (f *Feed) Clear() { f.lines = nil }
