package usecase

import (
	"context"

	"github.com/bnema/wring/internal/domain/entity"
)

// MockStateRepository is a func-field mock of repository.StateRepository
// for testing snapshot use cases.
type MockStateRepository struct {
	// Behavior configuration
	SaveFunc   func(ctx context.Context, label string, snapshot *entity.StateSnapshot) (int64, error)
	GetFunc    func(ctx context.Context, label string) (*entity.StateSnapshot, error)
	LatestFunc func(ctx context.Context) (*entity.StateSnapshot, error)
	ListFunc   func(ctx context.Context) ([]entity.SnapshotInfo, error)
	DeleteFunc func(ctx context.Context, label string) error
	PruneFunc  func(ctx context.Context, keep int) (int64, error)

	// Call tracking
	SaveCalls []struct {
		Label    string
		Snapshot *entity.StateSnapshot
	}
	GetCalls    []string
	DeleteCalls []string
	PruneCalls  []int
	LatestCount int
	ListCount   int
}

// NewMockStateRepository creates a new mock with default no-op
// implementations.
func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{
		SaveFunc: func(ctx context.Context, label string, snapshot *entity.StateSnapshot) (int64, error) {
			return 1, nil
		},
		GetFunc: func(ctx context.Context, label string) (*entity.StateSnapshot, error) {
			return nil, nil
		},
		LatestFunc: func(ctx context.Context) (*entity.StateSnapshot, error) {
			return nil, nil
		},
		ListFunc: func(ctx context.Context) ([]entity.SnapshotInfo, error) {
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, label string) error {
			return nil
		},
		PruneFunc: func(ctx context.Context, keep int) (int64, error) {
			return 0, nil
		},
	}
}

// Save implements repository.StateRepository.
func (m *MockStateRepository) Save(ctx context.Context, label string, snapshot *entity.StateSnapshot) (int64, error) {
	m.SaveCalls = append(m.SaveCalls, struct {
		Label    string
		Snapshot *entity.StateSnapshot
	}{label, snapshot})
	return m.SaveFunc(ctx, label, snapshot)
}

// Get implements repository.StateRepository.
func (m *MockStateRepository) Get(ctx context.Context, label string) (*entity.StateSnapshot, error) {
	m.GetCalls = append(m.GetCalls, label)
	return m.GetFunc(ctx, label)
}

// Latest implements repository.StateRepository.
func (m *MockStateRepository) Latest(ctx context.Context) (*entity.StateSnapshot, error) {
	m.LatestCount++
	return m.LatestFunc(ctx)
}

// List implements repository.StateRepository.
func (m *MockStateRepository) List(ctx context.Context) ([]entity.SnapshotInfo, error) {
	m.ListCount++
	return m.ListFunc(ctx)
}

// Delete implements repository.StateRepository.
func (m *MockStateRepository) Delete(ctx context.Context, label string) error {
	m.DeleteCalls = append(m.DeleteCalls, label)
	return m.DeleteFunc(ctx, label)
}

// Prune implements repository.StateRepository.
func (m *MockStateRepository) Prune(ctx context.Context, keep int) (int64, error) {
	m.PruneCalls = append(m.PruneCalls, keep)
	return m.PruneFunc(ctx, keep)
}
