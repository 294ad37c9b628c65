// Package store provides the two storage backends for users and posts: a
// process-local in-memory store and a pair of GORM repositories.
package store

import (
	"sync"
	"time"

	"userposts-api/internal/model"
)

// MemoryStore holds users in memory with sequential id assignment. All
// mutations go through one mutex, which also guards the id counter, so
// concurrent saves can never hand out duplicate ids.
type MemoryStore struct {
	mu     sync.Mutex
	users  []model.User
	nextID int
}

// NewMemoryStore returns a store pre-seeded with a deterministic dataset.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{nextID: 1}
	seed := []model.User{
		{Name: "Adam", BirthDate: model.NewDate(1994, time.March, 15)},
		{Name: "Eve", BirthDate: model.NewDate(1999, time.August, 2)},
		{Name: "Jim", BirthDate: model.NewDate(2001, time.November, 30)},
	}
	for i := range seed {
		s.Save(&seed[i])
	}
	return s
}

// FindAll returns all users in insertion order.
func (s *MemoryStore) FindAll() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// FindOne returns the user with the given id, or nil if absent. Absence is
// an expected outcome, not an error.
func (s *MemoryStore) FindOne(id int) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// Save stores the user, assigning the next sequential id when none is set,
// and returns it with the id populated.
func (s *MemoryStore) Save(u *model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.nextID
		s.nextID++
	} else if u.ID >= s.nextID {
		s.nextID = u.ID + 1
	}
	s.users = append(s.users, *u)
	return u
}

// DeleteByID removes the user with the given id. Deleting an absent id is a
// silent no-op; DELETE is uniformly idempotent.
func (s *MemoryStore) DeleteByID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}
