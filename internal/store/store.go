// Package store is the single owner of the per-identity application state.
// All mutation goes through the operation set below; every operation is total
// and leaves the progression invariants intact (points >= 0, level derived
// from points, RSVP set membership unique, capped histories).
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/rules"
)

const scanHistoryCap = 50
const trackerHistoryCap = 30

// Store wraps one EcosphereState. The mutex serializes mutations so each one
// reads the state left by the previous one, even under concurrent handlers.
type Store struct {
	mu    sync.Mutex
	state model.EcosphereState
	now   func() time.Time
	newID func() string
}

func New(state model.EcosphereState) *Store {
	return NewWithClock(state, time.Now, uuid.NewString)
}

// NewWithClock injects the clock and id generator. Tests pin both.
func NewWithClock(state model.EcosphereState, now func() time.Time, newID func() string) *Store {
	return &Store{state: state, now: now, newID: newID}
}

// Snapshot returns a copy of the current state. The top-level slices are
// copied; entity-internal slices (tags, certifications) are shared but never
// mutated by any operation.
func (s *Store) Snapshot() model.EcosphereState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// RsvpEvent joins an event. Repeat RSVPs are no-ops, as are unknown event ids
// and events already at capacity (the strict reading of the attendee cap).
func (s *Store) RsvpEvent(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if containsID(s.state.EventRsvps, eventID) {
		return false
	}
	idx := findEvent(s.state.Events, eventID)
	if idx < 0 {
		return false
	}
	ev := &s.state.Events[idx]
	if ev.Attendees >= ev.MaxAttendees {
		return false
	}

	ev.Attendees++
	s.state.EventRsvps = append(s.state.EventRsvps, eventID)
	s.state.User.Points = rules.ClampPoints(float64(s.state.User.Points + ev.Points))
	s.state.User.EventsJoined++
	s.state.User.Level = rules.ComputeLevel(s.state.User.Points)
	return true
}

// CancelRsvp is the inverse of RsvpEvent. Cancelling an event the user never
// joined is a no-op.
func (s *Store) CancelRsvp(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !containsID(s.state.EventRsvps, eventID) {
		return false
	}
	s.state.EventRsvps = removeID(s.state.EventRsvps, eventID)

	if idx := findEvent(s.state.Events, eventID); idx >= 0 {
		ev := &s.state.Events[idx]
		if ev.Attendees > 0 {
			ev.Attendees--
		}
		s.state.User.Points = rules.ClampPoints(float64(s.state.User.Points - ev.Points))
	}
	if s.state.User.EventsJoined > 0 {
		s.state.User.EventsJoined--
	}
	s.state.User.Level = rules.ComputeLevel(s.state.User.Points)
	return true
}

// RecordScan awards tiered points for a recognised product and prepends a
// history entry. Unknown product ids are ignored.
func (s *Store) RecordScan(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *model.ScannerProduct
	for i := range s.state.ScannerProducts {
		if s.state.ScannerProducts[i].ID == productID {
			product = &s.state.ScannerProducts[i]
			break
		}
	}
	if product == nil {
		return false
	}

	s.state.User.Points = rules.ClampPoints(float64(s.state.User.Points + rules.ScanPoints(product.EcoScore)))
	s.state.User.ProductsScanned++
	s.state.User.Level = rules.ComputeLevel(s.state.User.Points)

	entry := model.ScanHistoryItem{
		ID:        s.newID(),
		ProductID: productID,
		ScannedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.state.ScanHistory = prependScan(s.state.ScanHistory, entry, scanHistoryCap)
	return true
}

// AddToCart increments the line for a product, inserting it at quantity 1 if
// absent. The product id is not validated here; checkout resolves lines
// against the catalog and unresolvable ones contribute nothing.
func (s *Store) AddToCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Cart {
		if s.state.Cart[i].ProductID == productID {
			s.state.Cart[i].Quantity++
			return true
		}
	}
	s.state.Cart = append(s.state.Cart, model.CartItem{ProductID: productID, Quantity: 1})
	return true
}

// UpdateCartQuantity sets the quantity for an existing line; zero or negative
// removes the line. Unknown lines are no-ops.
func (s *Store) UpdateCartQuantity(productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Cart {
		if s.state.Cart[i].ProductID == productID {
			if quantity <= 0 {
				s.state.Cart = append(s.state.Cart[:i], s.state.Cart[i+1:]...)
			} else {
				s.state.Cart[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// RemoveFromCart deletes a line regardless of quantity.
func (s *Store) RemoveFromCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Cart {
		if s.state.Cart[i].ProductID == productID {
			s.state.Cart = append(s.state.Cart[:i], s.state.Cart[i+1:]...)
			return true
		}
	}
	return false
}

// CheckoutCart turns the cart into an order: total and earned points are
// summed over lines that resolve against the store catalog, the points are
// awarded, and the cart is cleared. An empty cart is a no-op.
func (s *Store) CheckoutCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Cart) == 0 {
		return false
	}

	total := 0
	earned := 0
	for _, item := range s.state.Cart {
		for i := range s.state.StoreProducts {
			if s.state.StoreProducts[i].ID == item.ProductID {
				total += s.state.StoreProducts[i].Price * item.Quantity
				earned += s.state.StoreProducts[i].PointsReward * item.Quantity
				break
			}
		}
	}

	s.state.User.Points = rules.ClampPoints(float64(s.state.User.Points + earned))
	s.state.User.Level = rules.ComputeLevel(s.state.User.Points)

	order := model.Order{
		ID:       s.newID(),
		Items:    append([]model.CartItem(nil), s.state.Cart...),
		Total:    total,
		PlacedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.state.Orders = append([]model.Order{order}, s.state.Orders...)
	s.state.Cart = []model.CartItem{}
	return true
}

// SaveTrackerSnapshot records a daily log: tiered points for the carbon total,
// streak continuation against the previous log's date, and carbon-saved
// credit against the 40kg baseline. The very first log counts as a
// consecutive day.
func (s *Store) SaveTrackerSnapshot(carbon model.CarbonData, waste model.WasteData, transport model.TransportData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	totalCarbon := rules.TotalCarbon(carbon)

	dayDiff := 1
	if len(s.state.TrackerSnapshots) > 0 {
		if last, err := time.Parse(time.RFC3339, s.state.TrackerSnapshots[0].Date); err == nil {
			dayDiff = rules.DayDiff(last, now)
		}
	}
	streak := rules.NextStreak(dayDiff, s.state.User.CurrentStreak)

	s.state.User.Points = rules.ClampPoints(float64(s.state.User.Points + rules.TrackerPoints(totalCarbon)))
	s.state.User.CarbonSavedKg += rules.CarbonSaved(totalCarbon)
	s.state.User.CurrentStreak = streak
	if streak > s.state.User.LongestStreak {
		s.state.User.LongestStreak = streak
	}
	s.state.User.Level = rules.ComputeLevel(s.state.User.Points)

	snapshot := model.TrackerSnapshot{
		ID:            s.newID(),
		Date:          now.UTC().Format(time.RFC3339),
		CarbonData:    carbon,
		WasteData:     waste,
		TransportData: transport,
	}
	s.state.TrackerSnapshots = prependTracker(s.state.TrackerSnapshots, snapshot, trackerHistoryCap)
	return true
}

// UpdateCourseProgress upserts the progress value for a course id.
func (s *Store) UpdateCourseProgress(courseID string, progress int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.CourseProgress {
		if s.state.CourseProgress[i].ID == courseID {
			s.state.CourseProgress[i].Progress = progress
			return true
		}
	}
	s.state.CourseProgress = append(s.state.CourseProgress, model.CourseProgress{ID: courseID, Progress: progress})
	return true
}

func findEvent(events []model.Event, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func prependScan(history []model.ScanHistoryItem, entry model.ScanHistoryItem, limit int) []model.ScanHistoryItem {
	out := make([]model.ScanHistoryItem, 0, len(history)+1)
	out = append(out, entry)
	out = append(out, history...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func prependTracker(history []model.TrackerSnapshot, entry model.TrackerSnapshot, limit int) []model.TrackerSnapshot {
	out := make([]model.TrackerSnapshot, 0, len(history)+1)
	out = append(out, entry)
	out = append(out, history...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func copyState(st model.EcosphereState) model.EcosphereState {
	out := st
	out.Events = append([]model.Event(nil), st.Events...)
	out.EventRsvps = append([]string(nil), st.EventRsvps...)
	out.ScannerProducts = append([]model.ScannerProduct(nil), st.ScannerProducts...)
	out.ScanHistory = append([]model.ScanHistoryItem(nil), st.ScanHistory...)
	out.StoreProducts = append([]model.StoreProduct(nil), st.StoreProducts...)
	out.Cart = append([]model.CartItem(nil), st.Cart...)
	out.Orders = append([]model.Order(nil), st.Orders...)
	out.TrackerSnapshots = append([]model.TrackerSnapshot(nil), st.TrackerSnapshots...)
	out.CourseProgress = append([]model.CourseProgress(nil), st.CourseProgress...)
	return out
}
