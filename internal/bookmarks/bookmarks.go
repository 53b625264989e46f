// Package bookmarks keeps the user's bookmarked prayers.
//
// Bookmarks are keyed by date and time of day, so each slot of each day can
// be bookmarked at most once. The list is ordered most recent first and is
// persisted as a single value in a storage.KeyValue backend.
package bookmarks

import (
	"log"
	"sync"
	"time"

	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/storage"
)

type Store struct {
	kv  storage.KeyValue
	now func() time.Time

	mu        sync.RWMutex
	bookmarks []entities.BookmarkedPrayer
}

// NewStore loads the persisted bookmarks. Unreadable data is logged and the
// store starts empty.
func NewStore(kv storage.KeyValue, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	items, err := storage.LoadList[entities.BookmarkedPrayer](kv, entities.StorageKeyBookmarks)
	if err != nil {
		log.Printf("Bookmarks: failed to load, starting empty: %v", err)
	}
	return &Store{
		kv:        kv,
		now:       now,
		bookmarks: items,
	}
}

// AddBookmark stores a new bookmark at the front of the list. It returns
// false without changing anything if the slot is already bookmarked.
func (s *Store) AddBookmark(input entities.BookmarkInput) bool {
	id := entities.BookmarkID(input.Date, input.TimeOfDay)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(id) >= 0 {
		return false
	}

	bookmark := entities.BookmarkedPrayer{
		ID:           id,
		Date:         input.Date,
		TimeOfDay:    input.TimeOfDay,
		DailyPrayer:  input.DailyPrayer,
		BookmarkedAt: s.now().UTC(),
	}

	updated := make([]entities.BookmarkedPrayer, 0, len(s.bookmarks)+1)
	updated = append(updated, bookmark)
	updated = append(updated, s.bookmarks...)
	s.saveLocked(updated)
	return true
}

// RemoveBookmark drops the bookmark with the given id. Unknown ids are ignored.
func (s *Store) RemoveBookmark(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]entities.BookmarkedPrayer, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		if b.ID != id {
			updated = append(updated, b)
		}
	}
	s.saveLocked(updated)
}

// IsBookmarked reports whether the slot for date and time of day is bookmarked.
func (s *Store) IsBookmarked(date string, tod entities.TimeOfDay) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(entities.BookmarkID(date, tod)) >= 0
}

// Get returns a single bookmark by id.
func (s *Store) Get(id string) (entities.BookmarkedPrayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.bookmarks[i], true
	}
	return entities.BookmarkedPrayer{}, false
}

// List returns all bookmarks, most recent first.
func (s *Store) List() []entities.BookmarkedPrayer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.BookmarkedPrayer, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookmarks)
}

func (s *Store) indexLocked(id string) int {
	for i, b := range s.bookmarks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// saveLocked swaps in the new list and persists it. A failed write is logged;
// the in-memory list keeps the change for the rest of the session.
func (s *Store) saveLocked(updated []entities.BookmarkedPrayer) {
	s.bookmarks = updated
	if err := storage.SaveList(s.kv, entities.StorageKeyBookmarks, updated); err != nil {
		log.Printf("Bookmarks: failed to save: %v", err)
	}
}
