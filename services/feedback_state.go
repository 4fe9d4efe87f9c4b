package services

import (
	"sync"
	"time"

	"hotel-management-server/models"
)

// Draft is one user's in-progress feedback submission. It accumulates state
// across the pick_res / rating / success requests and is discarded once the
// review is recorded.
type Draft struct {
	InvoiceNo       string
	RoomNo          uint
	HotelID         uint
	ActiveCategory  int
	RoomRating      int
	BreakfastRating int
	ServiceRating   int
	RoomType        string
	BreakfastType   string
	ServiceType     string
	UpdatedAt       time.Time
}

// Rating returns the rating recorded for the given category, or 0 when none
// has been recorded yet.
func (d *Draft) Rating(category int) int {
	switch category {
	case models.ReviewCategoryRoom:
		return d.RoomRating
	case models.ReviewCategoryBreakfast:
		return d.BreakfastRating
	case models.ReviewCategoryService:
		return d.ServiceRating
	}
	return 0
}

// DraftStore holds feedback drafts keyed by authenticated user id. Keying by
// user keeps concurrent submissions from different users isolated from each
// other.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[uint]*Draft
}

// NewDraftStore creates an empty draft store
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[uint]*Draft),
	}
}

// Drafts is the process-wide draft store used by the feedback routes.
var Drafts = NewDraftStore()

// Get returns a copy of the user's draft, or nil when none exists
func (s *DraftStore) Get(userID uint) *Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return nil
	}
	copied := *draft
	return &copied
}

func (s *DraftStore) draftLocked(userID uint) *Draft {
	draft, ok := s.drafts[userID]
	if !ok {
		draft = &Draft{}
		s.drafts[userID] = draft
	}
	return draft
}

// SetInvoice records the reservation the user selected for review
func (s *DraftStore) SetInvoice(userID uint, invoiceNo string, roomNo, hotelID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.draftLocked(userID)
	draft.InvoiceNo = invoiceNo
	draft.RoomNo = roomNo
	draft.HotelID = hotelID
	draft.UpdatedAt = time.Now()
}

// SetRating records a rating under the given category together with the
// chosen sub-type strings, and makes that category the active one.
func (s *DraftStore) SetRating(userID uint, rating *models.RatingRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.draftLocked(userID)
	switch rating.ReviewType {
	case models.ReviewCategoryRoom:
		draft.RoomRating = rating.RadioValue
	case models.ReviewCategoryBreakfast:
		draft.BreakfastRating = rating.RadioValue
	case models.ReviewCategoryService:
		draft.ServiceRating = rating.RadioValue
	}
	draft.ActiveCategory = rating.ReviewType
	draft.RoomType = rating.RoomType
	draft.BreakfastType = rating.BreakfastType
	draft.ServiceType = rating.ServiceType
	draft.UpdatedAt = time.Now()
}

// Clear discards the user's draft
func (s *DraftStore) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, userID)
}

// Cleanup removes drafts idle longer than maxAge and reports how many were
// removed.
func (s *DraftStore) Cleanup(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-maxAge)
	for userID, draft := range s.drafts {
		if draft.UpdatedAt.Before(cutoff) {
			delete(s.drafts, userID)
			removed++
		}
	}
	return removed
}
