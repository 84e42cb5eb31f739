package ledger

import (
	"sacco-backend/internal/models"
)

// ExportSnapshot returns a full-state dump stamped with the export time.
// The export itself is recorded in the activity trail.
func (s *Store) ExportSnapshot() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logActivity(models.ActionTypeSystem, "Data Export", "System data exported as JSON backup", models.LogStatusSuccess)

	exportDate := s.now()
	s.settings.LastBackup = &exportDate
	s.persist()

	snapshot := s.snapshot()
	snapshot.ExportDate = &exportDate
	return snapshot
}

// ImportSnapshot replaces ledger state from a backup. Sections absent from
// the snapshot are left untouched, then the merged state is persisted.
func (s *Store) ImportSnapshot(snapshot *models.Snapshot) error {
	if snapshot == nil {
		return &ValidationError{Field: "snapshot", Message: "snapshot data is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot.Members != nil {
		s.members = append([]*models.Member{}, snapshot.Members...)
	}
	if snapshot.Loans != nil {
		s.loans = append([]*models.Loan{}, snapshot.Loans...)
	}
	if snapshot.Payments != nil {
		s.payments = append([]*models.Payment{}, snapshot.Payments...)
	}
	if snapshot.Settings != nil {
		settings := *snapshot.Settings
		s.settings = &settings
	}
	if snapshot.ActivityLogs != nil {
		s.activityLogs = append([]*models.ActivityLogEntry{}, snapshot.ActivityLogs...)
		if len(s.activityLogs) > maxActivityLogs {
			s.activityLogs = s.activityLogs[:maxActivityLogs]
		}
	}

	s.logActivity(models.ActionTypeSystem, "Data Import", "System data imported from JSON backup", models.LogStatusSuccess)
	s.persist()

	return nil
}
