package flash

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopReturnsMessageOnce(t *testing.T) {
	s := NewStore()
	s.Set("user-1", Message{Text: "You signed in successfully today."})

	msg, ok := s.Pop("user-1")
	assert.True(t, ok)
	assert.Equal(t, "You signed in successfully today.", msg.Text)

	_, ok = s.Pop("user-1")
	assert.False(t, ok, "second Pop must return nothing")
}

func TestPopUnknownUser(t *testing.T) {
	s := NewStore()
	_, ok := s.Pop("nobody")
	assert.False(t, ok)
}

func TestSetReplacesUnread(t *testing.T) {
	s := NewStore()
	s.Set("user-1", Message{Text: "first"})
	s.Set("user-1", Message{Text: "second"})

	msg, ok := s.Pop("user-1")
	assert.True(t, ok)
	assert.Equal(t, "second", msg.Text)
}

func TestConcurrentPopSingleWinner(t *testing.T) {
	s := NewStore()
	s.Set("user-1", Message{Text: "only once"})

	var wg sync.WaitGroup
	var mu sync.Mutex
	got := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := s.Pop("user-1"); ok {
				mu.Lock()
				got++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, got, "exactly one Pop should observe the message")
}
