// Package player is the boundary to the external video playback collaborator.
// The client never embeds a real player; it needs only a seek target and a
// bounded-interval feed of the current playback time.
package player

import (
	"sync"
	"time"
)

// DefaultTickInterval is how often playback time is published while playing.
const DefaultTickInterval = 250 * time.Millisecond

// Player is what the transcript presenter needs from a video player: tell it
// where to seek, and hear where playback currently is. Seeking must not
// restart playback state.
type Player interface {
	// Seek moves playback to the given position in seconds.
	Seek(seconds float64)
	// Times emits the current playback time at a bounded interval while
	// playing. The channel closes when the player is closed.
	Times() <-chan float64
	// Close stops publication and releases the player.
	Close()
}

// StubPlayer is a wall-clock driven Player used when no real playback device
// is attached. Position advances in real time while playing; Seek rebases the
// origin without touching the play/pause state.
type StubPlayer struct {
	mu      sync.Mutex
	origin  time.Time // wall time corresponding to position 0
	at      float64   // position when paused
	playing bool
	times   chan float64
	done    chan struct{}
	once    sync.Once
}

func NewStubPlayer(interval time.Duration) *StubPlayer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	p := &StubPlayer{
		times: make(chan float64, 1),
		done:  make(chan struct{}),
	}
	go p.publish(interval)
	return p
}

func (p *StubPlayer) publish(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(p.times)

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.mu.Lock()
			if !p.playing {
				p.mu.Unlock()
				continue
			}
			pos := time.Since(p.origin).Seconds()
			p.mu.Unlock()

			select {
			case p.times <- pos:
			default:
				// Renderer is behind; skip this tick rather than stall.
			}
		}
	}
}

func (p *StubPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		return
	}
	p.origin = time.Now().Add(-time.Duration(p.at * float64(time.Second)))
	p.playing = true
}

func (p *StubPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	p.at = time.Since(p.origin).Seconds()
	p.playing = false
}

func (p *StubPlayer) Seek(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.at = seconds
	p.origin = time.Now().Add(-time.Duration(seconds * float64(time.Second)))
}

// Position returns the current playback position in seconds.
func (p *StubPlayer) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return p.at
	}
	return time.Since(p.origin).Seconds()
}

func (p *StubPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *StubPlayer) Times() <-chan float64 {
	return p.times
}

func (p *StubPlayer) Close() {
	p.once.Do(func() { close(p.done) })
}

var _ Player = (*StubPlayer)(nil)
