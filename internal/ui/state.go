package ui

import "sync"

// Channel gives descendants of a Tabs read access to the active tab and a
// setter for it.
type Channel interface {
	ActiveTab() string
	SetActiveTab(id string)
}

// ChangeFunc is called after the active tab moves from one id to another.
type ChangeFunc func(from, to string)

type subscriber struct {
	id int
	fn ChangeFunc
}

// State holds the active tab identifier for one Tabs instance.
// The identifier is never validated against existing tabs.
type State struct {
	mu     sync.Mutex
	active string
	nextID int
	subs   []subscriber
}

// NewState creates a State seeded with defaultActive.
func NewState(defaultActive string) *State {
	return &State{active: defaultActive}
}

// ActiveTab implements Channel.
func (s *State) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActiveTab implements Channel. Subscribers are notified synchronously,
// in registration order, only when the value actually changes.
func (s *State) SetActiveTab(id string) {
	s.mu.Lock()
	from := s.active
	if from == id {
		s.mu.Unlock()
		return
	}
	s.active = id
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(from, id)
	}
}

// Subscribe registers fn for change notifications.
// The returned func removes the registration; calling it twice is a no-op.
func (s *State) Subscribe(fn ChangeFunc) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
