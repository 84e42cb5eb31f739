package ledger

import (
	"github.com/google/uuid"

	"sacco-backend/internal/models"
)

// maxActivityLogs bounds the audit trail; the oldest entries are dropped first
const maxActivityLogs = 1000

// logActivity prepends an entry to the audit trail and truncates it to the
// retention cap. Logging is fire-and-forget relative to the mutation that
// triggered it. Caller must hold the write lock.
func (s *Store) logActivity(actionType models.ActionType, action, details string, status models.LogStatus) *models.ActivityLogEntry {
	entry := &models.ActivityLogEntry{
		ID:         uuid.New().String(),
		Timestamp:  s.now(),
		ActionType: actionType,
		Action:     action,
		Details:    details,
		User:       s.user,
		Status:     status,
	}

	s.activityLogs = append([]*models.ActivityLogEntry{entry}, s.activityLogs...)
	if len(s.activityLogs) > maxActivityLogs {
		s.activityLogs = s.activityLogs[:maxActivityLogs]
	}

	if s.notifier != nil {
		s.notifier.ActivityLogged(entry)
	}

	return entry
}

// ActivityLogs returns the audit trail, newest first. When limit is positive,
// at most that many entries are returned.
func (s *Store) ActivityLogs(limit int) []*models.ActivityLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := s.activityLogs
	if limit > 0 && limit < len(logs) {
		logs = logs[:limit]
	}

	result := make([]*models.ActivityLogEntry, len(logs))
	copy(result, logs)
	return result
}
