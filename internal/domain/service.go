// Package domain defines the business logic for the activity directory service.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"

	"example.com/activitydirectory/internal/events"
	"example.com/activitydirectory/internal/observability"
)

var (
	// ErrActivityNotFound is returned when no activity exists under the given name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("student already signed up for activity")
	// ErrParticipantNotFound indicates the email is not on the activity's roster.
	ErrParticipantNotFound = errors.New("participant not found")
)

// ActivityRepository captures roster storage operations. Mutations are atomic
// with respect to a single activity: the membership check and the list edit
// happen under one critical section.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// RosterEventPublisher fans roster changes out to downstream consumers.
// Publishing is best effort; the signup itself never fails on publish errors.
type RosterEventPublisher interface {
	ParticipantSignedUp(ctx context.Context, event events.ParticipantSignedUp) error
	ParticipantUnregistered(ctx context.Context, event events.ParticipantUnregistered) error
}

// Service orchestrates roster workflows.
type Service struct {
	repo      ActivityRepository
	publisher RosterEventPublisher
}

// NewService constructs a Service.
func NewService(repo ActivityRepository, publisher RosterEventPublisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// ListActivities returns the full activity directory keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// GetActivity fetches a single activity by name.
func (s *Service) GetActivity(ctx context.Context, name string) (*Activity, error) {
	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// Signup adds the email to the activity's roster.
func (s *Service) Signup(ctx context.Context, name, email string) (*Activity, error) {
	activity, err := s.repo.AddParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}

	observability.RecordSignup(activity.Name, len(activity.Participants))

	event := events.ParticipantSignedUp{
		EventID:    uuid.NewString(),
		Activity:   activity.Name,
		Email:      email,
		RosterSize: len(activity.Participants),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.ParticipantSignedUp(ctx, event); err != nil {
		log.WithError(err).WithField("activity", activity.Name).Warn("failed to publish signup event")
	}

	return activity, nil
}

// Unregister removes the email from the activity's roster.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	activity, err := s.repo.RemoveParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}

	observability.RecordUnregister(activity.Name, len(activity.Participants))

	event := events.ParticipantUnregistered{
		EventID:    uuid.NewString(),
		Activity:   activity.Name,
		Email:      email,
		RosterSize: len(activity.Participants),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.ParticipantUnregistered(ctx, event); err != nil {
		log.WithError(err).WithField("activity", activity.Name).Warn("failed to publish unregister event")
	}

	return activity, nil
}
