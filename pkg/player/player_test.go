package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubPlayer(t *testing.T) {
	t.Run("should start paused at zero", func(t *testing.T) {
		p := NewStubPlayer(10 * time.Millisecond)
		defer p.Close()

		assert.False(t, p.Playing())
		assert.Equal(t, 0.0, p.Position())
	})

	t.Run("should advance position while playing", func(t *testing.T) {
		p := NewStubPlayer(10 * time.Millisecond)
		defer p.Close()

		p.Play()
		time.Sleep(50 * time.Millisecond)
		assert.Greater(t, p.Position(), 0.0)
	})

	t.Run("should hold position while paused", func(t *testing.T) {
		p := NewStubPlayer(10 * time.Millisecond)
		defer p.Close()

		p.Play()
		time.Sleep(30 * time.Millisecond)
		p.Pause()

		at := p.Position()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, at, p.Position())
	})

	t.Run("should seek without changing play state", func(t *testing.T) {
		p := NewStubPlayer(10 * time.Millisecond)
		defer p.Close()

		p.Seek(120)
		assert.False(t, p.Playing())
		assert.InDelta(t, 120.0, p.Position(), 0.001)

		p.Play()
		p.Seek(30)
		assert.True(t, p.Playing())
		assert.InDelta(t, 30.0, p.Position(), 1.0)
	})

	t.Run("should publish times while playing", func(t *testing.T) {
		p := NewStubPlayer(5 * time.Millisecond)
		defer p.Close()

		p.Seek(60)
		p.Play()

		select {
		case pos := <-p.Times():
			assert.Greater(t, pos, 59.0)
		case <-time.After(500 * time.Millisecond):
			t.Fatal("no playback time published")
		}
	})

	t.Run("should close the times channel on close", func(t *testing.T) {
		p := NewStubPlayer(5 * time.Millisecond)
		p.Close()

		select {
		case _, open := <-p.Times():
			require.False(t, open)
		case <-time.After(500 * time.Millisecond):
			t.Fatal("times channel did not close")
		}
	})

	t.Run("should tolerate double close", func(t *testing.T) {
		p := NewStubPlayer(5 * time.Millisecond)
		p.Close()
		p.Close()
	})
}
