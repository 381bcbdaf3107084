package flash

import "sync"

// Message is a one-shot status message shown to a user after an action,
// carrying the time of the sign action when relevant.
type Message struct {
	Text     string `json:"text"`
	SignTime string `json:"sign_time,omitempty"`
}

// Store holds per-user one-shot messages. A message is returned at most once:
// Pop clears it. This replaces ambient session state with an explicit
// single-read value.
type Store struct {
	mu       sync.Mutex
	messages map[string]Message
}

func NewStore() *Store {
	return &Store{messages: make(map[string]Message)}
}

// Set stores the message for the user, replacing any unread one.
func (s *Store) Set(userID string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[userID] = msg
}

// Pop returns the pending message for the user and clears it.
func (s *Store) Pop(userID string) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.messages[userID]
	if ok {
		delete(s.messages, userID)
	}
	return msg, ok
}
