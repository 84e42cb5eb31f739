package ledger

import (
	"log"
	"sync"
	"time"

	"sacco-backend/internal/models"
)

// Gateway persists ledger snapshots to durable storage. Save failures are
// reported but never roll back the in-memory mutation that triggered them.
type Gateway interface {
	Load() (*models.Snapshot, error)
	Save(*models.Snapshot) error
}

// Notifier receives activity entries and persistence failures for the UI
// notification channel
type Notifier interface {
	ActivityLogged(entry *models.ActivityLogEntry)
	PersistFailed(err error)
}

// Store owns the ledger collections and is their sole mutator. Every mutation
// validates its input, updates the collections, appends an activity entry and
// triggers a persistence save, in that order. The mutation surface is guarded
// by a single lock since the HTTP host serves requests concurrently.
type Store struct {
	mu      sync.RWMutex
	gateway Gateway

	members      []*models.Member
	loans        []*models.Loan
	payments     []*models.Payment
	settings     *models.Settings
	activityLogs []*models.ActivityLogEntry

	seed     *models.Snapshot
	notifier Notifier
	user     string
	now      func() time.Time
}

// Open loads the ledger from the gateway, falling back to the seed snapshot
// when durable storage is empty or unreadable. The user is the actor recorded
// on activity entries; empty defaults to "Admin".
func Open(gateway Gateway, seed *models.Snapshot, user string) *Store {
	if user == "" {
		user = "Admin"
	}
	s := &Store{
		gateway: gateway,
		seed:    seed,
		user:    user,
		now:     time.Now,
	}

	snapshot, err := gateway.Load()
	if err != nil {
		log.Printf("Warning: failed to load ledger data, using seed data: %v", err)
		snapshot = nil
	}
	if snapshot == nil || len(snapshot.Members) == 0 {
		snapshot = seed
	}
	s.apply(snapshot)

	s.logActivity(models.ActionTypeSystem, "Application Started", "SACCO Loan Management System initialized", models.LogStatusSuccess)
	s.persist()

	return s
}

// SetNotifier wires the UI notification channel. Pass nil to disable.
func (s *Store) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// apply replaces the in-memory collections from a snapshot. Nil sections
// reset to empty; missing settings fall back to defaults. Caller must hold
// the write lock (or be the only goroutine with a reference).
func (s *Store) apply(snapshot *models.Snapshot) {
	if snapshot == nil {
		snapshot = &models.Snapshot{}
	}
	s.members = append([]*models.Member{}, snapshot.Members...)
	s.loans = append([]*models.Loan{}, snapshot.Loans...)
	s.payments = append([]*models.Payment{}, snapshot.Payments...)
	s.activityLogs = append([]*models.ActivityLogEntry{}, snapshot.ActivityLogs...)

	if snapshot.Settings != nil {
		settings := *snapshot.Settings
		s.settings = &settings
	} else {
		s.settings = models.DefaultSettings()
	}
}

// snapshot builds a point-in-time copy of all collections. Caller must hold
// at least the read lock.
func (s *Store) snapshot() *models.Snapshot {
	settings := *s.settings
	return &models.Snapshot{
		Members:      append([]*models.Member{}, s.members...),
		Loans:        append([]*models.Loan{}, s.loans...),
		Payments:     append([]*models.Payment{}, s.payments...),
		Settings:     &settings,
		ActivityLogs: append([]*models.ActivityLogEntry{}, s.activityLogs...),
	}
}

// persist writes the current state through the gateway. A failed save is
// reported but the in-memory mutation stands; durable storage may lag until
// the next successful save. Caller must hold the write lock.
func (s *Store) persist() {
	if err := s.gateway.Save(s.snapshot()); err != nil {
		log.Printf("Error: failed to persist ledger data: %v", err)
		if s.notifier != nil {
			s.notifier.PersistFailed(err)
		}
	}
}

// Settings returns the current settings record
func (s *Store) Settings() *models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings := *s.settings
	return &settings
}

// UpdateSettings applies a partial settings update
func (s *Store) UpdateSettings(update models.SettingsUpdate) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.SaccoName != nil && *update.SaccoName == "" {
		return nil, &ValidationError{Field: "saccoName", Message: "sacco name is required"}
	}
	if update.DefaultInterestRate != nil && *update.DefaultInterestRate < 0 {
		return nil, &ValidationError{Field: "defaultInterestRate", Message: "interest rate cannot be negative"}
	}

	if update.SaccoName != nil {
		s.settings.SaccoName = *update.SaccoName
	}
	if update.DefaultInterestRate != nil {
		s.settings.DefaultInterestRate = *update.DefaultInterestRate
	}
	if update.Currency != nil {
		s.settings.Currency = *update.Currency
	}
	if update.MaxLoanAmount != nil {
		s.settings.MaxLoanAmount = *update.MaxLoanAmount
	}
	if update.MaxRepaymentPeriod != nil {
		s.settings.MaxRepaymentPeriod = *update.MaxRepaymentPeriod
	}

	s.logActivity(models.ActionTypeSystem, "Settings Updated", "System settings updated", models.LogStatusSuccess)
	s.persist()

	settings := *s.settings
	return &settings, nil
}

// ResetData restores the seed data set, discarding all current state
func (s *Store) ResetData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(s.seed)
	s.logActivity(models.ActionTypeSystem, "Data Cleared", "All system data cleared", models.LogStatusSuccess)
	s.persist()
}
