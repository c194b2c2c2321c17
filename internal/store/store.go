// Package store persists household profiles and their snapshots in a
// key-value backend: YAML files in a directory or a Redis database.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"go.uber.org/zap"
)

// Storage keys. The snapshot for profile <id> lives under DataKeyPrefix + <id>.
const (
	ProfilesKey       = "fire_planner_profiles"
	CurrentProfileKey = "fire_planner_current_profile_id"
	DataKeyPrefix     = "fire_planner_data_"
)

// DefaultProfileID is the profile that always exists and cannot be deleted
const DefaultProfileID = "default"

var (
	// ErrProfileNotFound is returned for an ID that is not in the profile list
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDefaultProfile is returned when deleting the default profile
	ErrDefaultProfile = errors.New("the default profile cannot be deleted")
	// ErrProfileActive is returned when deleting the current profile
	ErrProfileActive = errors.New("the current profile cannot be deleted")

	errNoKey = errors.New("key not found")
)

// Profile names one saved household
type Profile struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// DefaultProfile is the profile every store starts with
func DefaultProfile() Profile {
	return Profile{ID: DefaultProfileID, Name: "Default Profile"}
}

// ProfileStore manages profiles, their snapshots and the current selection
type ProfileStore interface {
	ListProfiles(ctx context.Context) ([]Profile, error)
	SaveProfile(ctx context.Context, p Profile) (Profile, error)
	DeleteProfile(ctx context.Context, id string) error
	LoadState(ctx context.Context, id string) (*domain.AppState, error)
	SaveState(ctx context.Context, id string, state *domain.AppState) error
	CurrentProfile(ctx context.Context) (string, error)
	SetCurrentProfile(ctx context.Context, id string) error
	Close() error
}

// backend is the raw key-value storage under a profile store
type backend interface {
	get(ctx context.Context, key string) ([]byte, error)
	set(ctx context.Context, key string, value []byte) error
	del(ctx context.Context, key string) error
	close() error
}

// codec serializes profile lists and snapshots for a backend
type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

// kvStore implements ProfileStore over any backend
type kvStore struct {
	mu      sync.Mutex
	backend backend
	codec   codec
	logger  *zap.Logger
}

func newKVStore(b backend, c codec, logger *zap.Logger) *kvStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &kvStore{backend: b, codec: c, logger: logger}
}

// ListProfiles returns every profile, default first
func (s *kvStore) ListProfiles(ctx context.Context) ([]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProfiles(ctx)
}

func (s *kvStore) listProfiles(ctx context.Context) ([]Profile, error) {
	raw, err := s.backend.get(ctx, ProfilesKey)
	if errors.Is(err, errNoKey) {
		return []Profile{DefaultProfile()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	var profiles []Profile
	if err := s.codec.unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	if indexOf(profiles, DefaultProfileID) < 0 {
		profiles = append([]Profile{DefaultProfile()}, profiles...)
	}
	return profiles, nil
}

func (s *kvStore) writeProfiles(ctx context.Context, profiles []Profile) error {
	raw, err := s.codec.marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := s.backend.set(ctx, ProfilesKey, raw); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	return nil
}

func indexOf(profiles []Profile, id string) int {
	for i, p := range profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// SaveProfile adds a profile or renames an existing one. An empty ID gets a new UUID.
func (s *kvStore) SaveProfile(ctx context.Context, p Profile) (Profile, error) {
	if p.Name == "" {
		return Profile{}, fmt.Errorf("profile name is required")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.listProfiles(ctx)
	if err != nil {
		return Profile{}, err
	}
	if i := indexOf(profiles, p.ID); i >= 0 {
		profiles[i] = p
	} else {
		profiles = append(profiles, p)
	}
	if err := s.writeProfiles(ctx, profiles); err != nil {
		return Profile{}, err
	}

	s.logger.Debug("profile saved", zap.String("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// DeleteProfile removes a profile and its snapshot
func (s *kvStore) DeleteProfile(ctx context.Context, id string) error {
	if id == DefaultProfileID {
		return ErrDefaultProfile
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.listProfiles(ctx)
	if err != nil {
		return err
	}
	i := indexOf(profiles, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	current, err := s.currentProfile(ctx)
	if err != nil {
		return err
	}
	if current == id {
		return ErrProfileActive
	}

	profiles = append(profiles[:i], profiles[i+1:]...)
	if err := s.writeProfiles(ctx, profiles); err != nil {
		return err
	}
	if err := s.backend.del(ctx, DataKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete snapshot for %s: %w", id, err)
	}

	s.logger.Debug("profile deleted", zap.String("id", id))
	return nil
}

// LoadState returns the snapshot saved for a profile. A profile that has
// never been saved starts from the sample household.
func (s *kvStore) LoadState(ctx context.Context, id string) (*domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireProfile(ctx, id); err != nil {
		return nil, err
	}

	raw, err := s.backend.get(ctx, DataKeyPrefix+id)
	if errors.Is(err, errNoKey) {
		s.logger.Debug("no snapshot saved, using defaults", zap.String("id", id))
		return domain.DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot for %s: %w", id, err)
	}

	var state domain.AppState
	if err := s.codec.unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for %s: %w", id, err)
	}
	return &state, nil
}

// SaveState stores the snapshot for an existing profile
func (s *kvStore) SaveState(ctx context.Context, id string, state *domain.AppState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireProfile(ctx, id); err != nil {
		return err
	}

	raw, err := s.codec.marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for %s: %w", id, err)
	}
	if err := s.backend.set(ctx, DataKeyPrefix+id, raw); err != nil {
		return fmt.Errorf("failed to write snapshot for %s: %w", id, err)
	}

	s.logger.Debug("snapshot saved", zap.String("id", id), zap.Int("bytes", len(raw)))
	return nil
}

func (s *kvStore) requireProfile(ctx context.Context, id string) error {
	profiles, err := s.listProfiles(ctx)
	if err != nil {
		return err
	}
	if indexOf(profiles, id) < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return nil
}

// CurrentProfile returns the selected profile ID, the default when none is set
func (s *kvStore) CurrentProfile(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentProfile(ctx)
}

func (s *kvStore) currentProfile(ctx context.Context) (string, error) {
	raw, err := s.backend.get(ctx, CurrentProfileKey)
	if errors.Is(err, errNoKey) || (err == nil && len(raw) == 0) {
		return DefaultProfileID, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read current profile: %w", err)
	}
	return string(raw), nil
}

// SetCurrentProfile selects an existing profile
func (s *kvStore) SetCurrentProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireProfile(ctx, id); err != nil {
		return err
	}
	if err := s.backend.set(ctx, CurrentProfileKey, []byte(id)); err != nil {
		return fmt.Errorf("failed to write current profile: %w", err)
	}
	return nil
}

// Close releases the backend
func (s *kvStore) Close() error {
	return s.backend.close()
}
