// Package directory stores the activity roster in memory.
package directory

import (
	"context"
	"sync"

	"example.com/activitydirectory/internal/domain"
)

// InMemoryRepository holds the activity directory behind a mutex. State lives
// for the life of the process; restarts return to the seed dataset.
type InMemoryRepository struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryRepository constructs a repository populated with the default
// school dataset.
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryFrom(defaultActivities())
}

// NewInMemoryRepositoryFrom constructs a repository from the given seed,
// copying every record so the caller cannot alias internal state.
func NewInMemoryRepositoryFrom(seed map[string]domain.Activity) *InMemoryRepository {
	activities := make(map[string]domain.Activity, len(seed))
	for name, activity := range seed {
		activity.Name = name
		activity.Participants = copyParticipants(activity.Participants)
		activities[name] = activity
	}
	return &InMemoryRepository{activities: activities}
}

func defaultActivities() map[string]domain.Activity {
	return map[string]domain.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// List returns a copy of the full directory.
func (r *InMemoryRepository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = copyParticipants(activity.Participants)
		out[name] = activity
	}
	return out, nil
}

// Get returns the activity by name, or nil when absent.
func (r *InMemoryRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, nil
	}
	activity.Participants = copyParticipants(activity.Participants)
	return &activity, nil
}

// AddParticipant appends the email to the activity's roster. The duplicate
// check and the append happen under one lock.
func (r *InMemoryRepository) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return nil, domain.ErrAlreadySignedUp
	}

	activity.Participants = append(copyParticipants(activity.Participants), email)
	r.activities[name] = activity

	out := activity
	out.Participants = copyParticipants(activity.Participants)
	return &out, nil
}

// RemoveParticipant deletes the email from the activity's roster, preserving
// the order of the remaining entries.
func (r *InMemoryRepository) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	index := -1
	for i, participant := range activity.Participants {
		if participant == email {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, domain.ErrParticipantNotFound
	}

	participants := make([]string, 0, len(activity.Participants)-1)
	participants = append(participants, activity.Participants[:index]...)
	participants = append(participants, activity.Participants[index+1:]...)
	activity.Participants = participants
	r.activities[name] = activity

	out := activity
	out.Participants = copyParticipants(activity.Participants)
	return &out, nil
}

func copyParticipants(participants []string) []string {
	out := make([]string, len(participants))
	copy(out, participants)
	return out
}
