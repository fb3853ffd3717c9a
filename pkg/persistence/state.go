package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mash-protocol/mash-av/pkg/parcel"
)

// StateVersion is the current version of the snapshot file format.
const StateVersion = 1

// ErrVersion is returned when a snapshot was written by a newer format.
var ErrVersion = errors.New("unsupported snapshot version")

// ModelState is one saved model.
type ModelState struct {
	// Version is the snapshot file format version.
	Version int `json:"version"`

	// SavedAt is when the snapshot was last saved.
	SavedAt time.Time `json:"saved_at"`

	// ResourceType is the resource type tag of the model.
	ResourceType string `json:"rt"`

	// URI is the resource address at save time.
	URI string `json:"uri,omitempty"`

	// Parcel is the compact encoding of the model.
	Parcel []byte `json:"parcel"`
}

// ModelStore manages persistence of a model snapshot to a JSON file.
type ModelStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewModelStore creates a new snapshot store at path.
func NewModelStore(path string) *ModelStore {
	return &ModelStore{path: path, now: time.Now}
}

// Path returns the snapshot file path.
func (s *ModelStore) Path() string { return s.path }

// Save persists the snapshot to disk.
func (s *ModelStore) Save(state *ModelState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = s.now()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// SaveModel encodes p and saves it under the given resource type and URI.
func (s *ModelStore) SaveModel(resourceType, uri string, p parcel.Parcelable) error {
	return s.Save(&ModelState{
		ResourceType: resourceType,
		URI:          uri,
		Parcel:       parcel.Marshal(p),
	})
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *ModelStore) Load() (*ModelState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &ModelState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	if state.Version > StateVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, state.Version)
	}

	return state, nil
}

// LoadModel decodes the saved snapshot into p. It returns false if no
// snapshot exists and fails if the snapshot holds a different resource type.
func (s *ModelStore) LoadModel(resourceType string, p parcel.Parcelable) (bool, error) {
	state, err := s.Load()
	if err != nil || state == nil {
		return false, err
	}
	if state.ResourceType != resourceType {
		return false, fmt.Errorf("snapshot holds %s, not %s", state.ResourceType, resourceType)
	}
	if err := parcel.Unmarshal(state.Parcel, p); err != nil {
		return false, fmt.Errorf("decode snapshot: %w", err)
	}
	return true, nil
}

// Clear removes the snapshot file.
func (s *ModelStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
