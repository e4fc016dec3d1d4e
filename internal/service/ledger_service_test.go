package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/seed"
)

type fakeStateRepo struct {
	mu      sync.Mutex
	records map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{records: map[string][]byte{}}
}

func (r *fakeStateRepo) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	payload, ok := r.records[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return payload, nil
}

func (r *fakeStateRepo) Save(_ context.Context, key string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[key] = payload
	r.saves++
	return nil
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "ecosphere-state-v1", StorageKey(""))
	assert.Equal(t, "ecosphere-state-v1-alice@example.com", StorageKey("alice@example.com"))
}

func TestLedgerPartitionsStateByIdentity(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(newFakeStateRepo())

	_, applied := svc.RsvpEvent(ctx, "alice@example.com", "1")
	require.True(t, applied)

	alice := svc.State(ctx, "alice@example.com")
	bob := svc.State(ctx, "bob@example.com")
	guest := svc.State(ctx, "")

	assert.Contains(t, alice.EventRsvps, "1")
	assert.Empty(t, bob.EventRsvps)
	assert.Empty(t, guest.EventRsvps)
	assert.Equal(t, seed.State().User.Points, bob.User.Points)
}

func TestLedgerPersistsAfterAppliedMutation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStateRepo()
	svc := NewLedgerService(repo)

	_, applied := svc.RsvpEvent(ctx, "alice@example.com", "1")
	require.True(t, applied)
	assert.Equal(t, 1, repo.saves)

	payload, ok := repo.records[StorageKey("alice@example.com")]
	require.True(t, ok)
	var stored model.EcosphereState
	require.NoError(t, json.Unmarshal(payload, &stored))
	assert.Contains(t, stored.EventRsvps, "1")
}

func TestLedgerNoopDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStateRepo()
	svc := NewLedgerService(repo)

	_, applied := svc.CancelRsvp(ctx, "alice@example.com", "1")
	assert.False(t, applied)
	_, applied = svc.RecordScan(ctx, "alice@example.com", "nope")
	assert.False(t, applied)
	assert.Equal(t, 0, repo.saves)
}

func TestLedgerReloadsSavedStatePerIdentity(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStateRepo()

	first := NewLedgerService(repo)
	_, applied := first.RsvpEvent(ctx, "alice@example.com", "1")
	require.True(t, applied)
	_, applied = first.RecordScan(ctx, "bob@example.com", "1")
	require.True(t, applied)

	// a fresh service sharing the same storage sees each identity's own state
	second := NewLedgerService(repo)
	alice := second.State(ctx, "alice@example.com")
	bob := second.State(ctx, "bob@example.com")

	assert.Equal(t, []string{"1"}, alice.EventRsvps)
	assert.Empty(t, alice.ScanHistory)
	assert.Len(t, bob.ScanHistory, 1)
	assert.Empty(t, bob.EventRsvps)
}

func TestLedgerForcesCatalogsOnReload(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStateRepo()

	tampered := seed.State()
	tampered.User.Points = 9000
	tampered.Events[0].Attendees = 1
	tampered.StoreProducts[0].Price = 5
	payload, err := json.Marshal(tampered)
	require.NoError(t, err)
	repo.records[StorageKey("alice@example.com")] = payload

	svc := NewLedgerService(repo)
	st := svc.State(ctx, "alice@example.com")

	assert.Equal(t, 9000, st.User.Points)
	assert.Equal(t, seed.Events(), st.Events)
	assert.Equal(t, seed.StoreProducts(), st.StoreProducts)
}

func TestLedgerLoadFailureFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStateRepo()
	repo.loadErr = errors.New("storage down")

	svc := NewLedgerService(repo)
	st := svc.State(ctx, "alice@example.com")
	assert.Equal(t, seed.State(), st)
}

func TestLedgerSaveFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStateRepo()
	repo.saveErr = errors.New("storage down")

	svc := NewLedgerService(repo)
	st, applied := svc.RsvpEvent(ctx, "alice@example.com", "1")
	assert.True(t, applied)
	assert.Contains(t, st.EventRsvps, "1")
}

func TestLedgerGuestsShareOneSlot(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStateRepo()
	svc := NewLedgerService(repo)

	_, applied := svc.AddToCart(ctx, "", "1")
	require.True(t, applied)

	second := NewLedgerService(repo)
	guest := second.State(ctx, "")
	require.Len(t, guest.Cart, 1)
	assert.Equal(t, "1", guest.Cart[0].ProductID)
}
