package ufmt

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Stream is one destination of a Broadcaster.
type Stream struct {
	out     Sink
	enabled atomic.Bool
}

// SetEnabled turns delivery to the stream on or off.
func (s *Stream) SetEnabled(enabled bool) { s.enabled.Store(enabled) }

// Enabled reports whether the stream receives bytes.
func (s *Stream) Enabled() bool { return s.enabled.Load() }

// Broadcaster is a Sink that fans every byte out to its enabled streams in
// the order they were added.
type Broadcaster struct {
	mu      sync.RWMutex
	streams []*Stream
}

// NewBroadcaster creates a broadcaster with no streams.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Add registers out as an enabled stream and returns its handle.
func (b *Broadcaster) Add(out Sink) *Stream {
	s := &Stream{out: out}
	s.enabled.Store(true)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.streams = append(b.streams, s)
	return s
}

// Remove unregisters s. It reports whether s was registered.
func (b *Broadcaster) Remove(s *Stream) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := slices.Index(b.streams, s)
	if i < 0 {
		return false
	}
	b.streams = slices.Delete(b.streams, i, i+1)
	return true
}

// Len returns the number of registered streams.
func (b *Broadcaster) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.streams)
}

// PutByte delivers c to every enabled stream.
func (b *Broadcaster) PutByte(c byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.streams {
		if s.enabled.Load() {
			s.out.PutByte(c)
		}
	}
}

// WriteString delivers every byte of str.
func (b *Broadcaster) WriteString(str string) {
	putString(b, str)
}
