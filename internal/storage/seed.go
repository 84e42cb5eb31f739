package storage

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"sacco-backend/internal/models"
)

// SeedSnapshot returns the bootstrap data set used when durable storage is
// empty. When a seed file path is configured and readable it takes
// precedence; otherwise the built-in founding-member data set is used.
func SeedSnapshot(path string) *models.Snapshot {
	if path != "" {
		snapshot, err := loadSeedFile(path)
		if err != nil {
			log.Printf("Warning: failed to load seed file %s, using built-in seed data: %v", path, err)
		} else {
			return snapshot
		}
	}
	return builtinSeed()
}

func loadSeedFile(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	if snapshot.Settings == nil {
		snapshot.Settings = models.DefaultSettings()
	}
	return &snapshot, nil
}

func builtinSeed() *models.Snapshot {
	joined := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	founding := []struct {
		id    string
		name  string
		date  time.Time
		notes string
	}{
		{"MEM001", "Joseph Ngamau", joined(2024, time.January, 15), "Founding member"},
		{"MEM002", "Gerald Gitau", joined(2024, time.January, 15), "Founding member"},
		{"MEM003", "Samuel Ndumia", joined(2024, time.January, 15), "Founding member"},
		{"MEM004", "Anthony Maina", joined(2024, time.January, 20), ""},
		{"MEM005", "Morgan Gitau", joined(2024, time.January, 20), ""},
		{"MEM006", "James Waweru", joined(2024, time.January, 25), ""},
		{"MEM007", "Samson Mbuu", joined(2024, time.January, 25), ""},
		{"MEM008", "Elijah Kibicho", joined(2024, time.February, 1), ""},
		{"MEM009", "John Njenga", joined(2024, time.February, 1), ""},
		{"MEM010", "James Gitau", joined(2024, time.February, 5), ""},
		{"MEM011", "Michael Gichiri", joined(2024, time.February, 10), ""},
		{"MEM012", "Joseph Mugo", joined(2024, time.February, 10), ""},
		{"MEM013", "James Kamau", joined(2024, time.February, 15), ""},
	}

	members := make([]*models.Member, 0, len(founding))
	for _, f := range founding {
		members = append(members, &models.Member{
			ID:         f.id,
			FullName:   f.name,
			DateJoined: f.date,
			Status:     models.MemberStatusActive,
			Notes:      f.notes,
			CreatedAt:  f.date,
		})
	}

	return &models.Snapshot{
		Members:  members,
		Settings: models.DefaultSettings(),
	}
}
