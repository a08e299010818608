package reminder

import (
	"context"
	"errors"
	"sync"

	"github.com/saulo-duarte/ignite-guild/internal/config"
)

var ErrTaskOutOfRange = errors.New("reminder: task index out of range")

type Service interface {
	// Load never fails: missing, malformed or unreadable state is an empty set.
	Load(ctx context.Context, visitorID string) CompletionSet
	Toggle(ctx context.Context, visitorID string, index int) (CompletionSet, error)
	Clear(ctx context.Context, visitorID string) (CompletionSet, error)
	// ResetAll empties every stored completion set and reports how many it
	// cleared.
	ResetAll(ctx context.Context) (int, error)
	TaskCount() int
}

type service struct {
	repo      Repository
	taskCount int
	mu        sync.Mutex
}

func NewService(repo Repository, taskCount int) Service {
	return &service{repo: repo, taskCount: taskCount}
}

func (s *service) TaskCount() int {
	return s.taskCount
}

func (s *service) Load(ctx context.Context, visitorID string) CompletionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, visitorID)
}

func (s *service) load(ctx context.Context, visitorID string) CompletionSet {
	indices, err := s.repo.Load(ctx, visitorID)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("key", Key(visitorID)).
			Warn("Discarding stored reminder state")
		return NewCompletionSet(s.taskCount)
	}
	return NewCompletionSet(s.taskCount, indices...)
}

func (s *service) Toggle(ctx context.Context, visitorID string, index int) (CompletionSet, error) {
	if index < 0 || index >= s.taskCount {
		return CompletionSet{}, ErrTaskOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.load(ctx, visitorID).Toggle(index)
	if err := s.repo.Save(ctx, visitorID, set.Indices()); err != nil {
		return CompletionSet{}, err
	}
	return set, nil
}

func (s *service) Clear(ctx context.Context, visitorID string) (CompletionSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := NewCompletionSet(s.taskCount)
	if err := s.repo.Save(ctx, visitorID, set.Indices()); err != nil {
		return CompletionSet{}, err
	}
	return set, nil
}

func (s *service) ResetAll(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.repo.Keys(ctx)
	if err != nil {
		return 0, err
	}
	for i, key := range keys {
		if err := s.repo.SaveKey(ctx, key, nil); err != nil {
			return i, err
		}
	}
	return len(keys), nil
}
