package models

import "time"

// ApplicationStore is the persisted record of who applied during the
// current open window. LastReset holds the open instant of the window
// the applied list belongs to; nil means no reset has happened yet.
type ApplicationStore struct {
	Applied   []string   `json:"applied"`
	LastReset *time.Time `json:"lastReset"`
}

func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{Applied: []string{}}
}

func (s *ApplicationStore) Contains(userID string) bool {
	for _, id := range s.Applied {
		if id == userID {
			return true
		}
	}
	return false
}

// Add appends userID to the applied list. Returns false if it was
// already present.
func (s *ApplicationStore) Add(userID string) bool {
	if s.Contains(userID) {
		return false
	}
	s.Applied = append(s.Applied, userID)
	return true
}

func (s *ApplicationStore) Clear() {
	s.Applied = s.Applied[:0]
}
