package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/repository"
	"github.com/immortalfoodie/Ecosphere/internal/store"
)

// StorageKeyPrefix versions the snapshot format. Guests share the bare prefix;
// authenticated identities get their own suffixed key.
const StorageKeyPrefix = "ecosphere-state-v1"

// LedgerService funnels every state mutation through the per-identity Store
// and writes the full snapshot back after each applied mutation. Reads and
// no-ops never touch storage. The bool results report whether the operation
// changed anything; operations themselves never fail.
type LedgerService interface {
	State(ctx context.Context, email string) model.EcosphereState
	RsvpEvent(ctx context.Context, email, eventID string) (model.EcosphereState, bool)
	CancelRsvp(ctx context.Context, email, eventID string) (model.EcosphereState, bool)
	RecordScan(ctx context.Context, email, productID string) (model.EcosphereState, bool)
	AddToCart(ctx context.Context, email, productID string) (model.EcosphereState, bool)
	UpdateCartQuantity(ctx context.Context, email, productID string, quantity int) (model.EcosphereState, bool)
	RemoveFromCart(ctx context.Context, email, productID string) (model.EcosphereState, bool)
	CheckoutCart(ctx context.Context, email string) (model.EcosphereState, bool)
	SaveTrackerSnapshot(ctx context.Context, email string, carbon model.CarbonData, waste model.WasteData, transport model.TransportData) (model.EcosphereState, bool)
	UpdateCourseProgress(ctx context.Context, email, courseID string, progress int) (model.EcosphereState, bool)
}

type ledgerService struct {
	repo repository.StateRepository

	mu     sync.Mutex
	stores map[string]*store.Store

	newStore func(model.EcosphereState) *store.Store
}

func NewLedgerService(repo repository.StateRepository) LedgerService {
	return &ledgerService{
		repo:     repo,
		stores:   make(map[string]*store.Store),
		newStore: store.New,
	}
}

// StorageKey maps an identity to its snapshot key. An empty email is guest
// mode: all guests share one slot.
func StorageKey(email string) string {
	if email == "" {
		return StorageKeyPrefix
	}
	return StorageKeyPrefix + "-" + email
}

// storeFor returns the live store for an identity, loading and rehydrating
// its snapshot on first touch. Load failures (missing row, corrupt payload)
// fall back to the seed; they are never surfaced.
func (s *ledgerService) storeFor(ctx context.Context, email string) *store.Store {
	key := StorageKey(email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stores[key]; ok {
		return st
	}

	payload, err := s.repo.Load(ctx, key)
	if err != nil {
		payload = nil
	}
	st := s.newStore(store.Rehydrate(payload))
	s.stores[key] = st
	return st
}

// persist overwrites the stored snapshot. Best-effort: failures are logged
// and swallowed so a storage hiccup never breaks a user action.
func (s *ledgerService) persist(ctx context.Context, email string, st *store.Store) {
	payload, err := json.Marshal(st.Snapshot())
	if err != nil {
		log.Printf("marshal state failed key=%s: %v", StorageKey(email), err)
		return
	}
	if err := s.repo.Save(ctx, StorageKey(email), payload); err != nil {
		log.Printf("persist state failed key=%s: %v", StorageKey(email), err)
	}
}

func (s *ledgerService) State(ctx context.Context, email string) model.EcosphereState {
	return s.storeFor(ctx, email).Snapshot()
}

func (s *ledgerService) RsvpEvent(ctx context.Context, email, eventID string) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.RsvpEvent(eventID)
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}

func (s *ledgerService) CancelRsvp(ctx context.Context, email, eventID string) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.CancelRsvp(eventID)
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}

func (s *ledgerService) RecordScan(ctx context.Context, email, productID string) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.RecordScan(productID)
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}

func (s *ledgerService) AddToCart(ctx context.Context, email, productID string) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.AddToCart(productID)
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}

func (s *ledgerService) UpdateCartQuantity(ctx context.Context, email, productID string, quantity int) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.UpdateCartQuantity(productID, quantity)
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}

func (s *ledgerService) RemoveFromCart(ctx context.Context, email, productID string) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.RemoveFromCart(productID)
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}

func (s *ledgerService) CheckoutCart(ctx context.Context, email string) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.CheckoutCart()
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}

func (s *ledgerService) SaveTrackerSnapshot(ctx context.Context, email string, carbon model.CarbonData, waste model.WasteData, transport model.TransportData) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.SaveTrackerSnapshot(carbon, waste, transport)
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}

func (s *ledgerService) UpdateCourseProgress(ctx context.Context, email, courseID string, progress int) (model.EcosphereState, bool) {
	st := s.storeFor(ctx, email)
	applied := st.UpdateCourseProgress(courseID, progress)
	if applied {
		s.persist(ctx, email, st)
	}
	return st.Snapshot(), applied
}
