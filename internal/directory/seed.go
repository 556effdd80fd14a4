package directory

import (
	"encoding/json"
	"fmt"
	"os"

	"example.com/activitydirectory/internal/domain"
)

// seedRecord mirrors the JSON shape of a directory entry, which matches the
// GET /activities response body.
type seedRecord struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// LoadSeedFile reads an activity map from a JSON file so deployments can
// start from their own dataset instead of the built-in one.
func LoadSeedFile(path string) (map[string]domain.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var records map[string]seedRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	seed := make(map[string]domain.Activity, len(records))
	for name, record := range records {
		if record.MaxParticipants <= 0 {
			return nil, fmt.Errorf("seed activity %q: max_participants must be > 0", name)
		}
		seed[name] = domain.Activity{
			Name:            name,
			Description:     record.Description,
			Schedule:        record.Schedule,
			MaxParticipants: record.MaxParticipants,
			Participants:    record.Participants,
		}
	}
	return seed, nil
}
