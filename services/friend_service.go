package services

import (
	"context"
	"errors"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
	"go.uber.org/zap"
)

// FriendService manages friend records
type FriendService struct {
	friends repositories.FriendRepository
	logger  *zap.Logger
}

// NewFriendService creates a new FriendService
func NewFriendService(friends repositories.FriendRepository, logger *zap.Logger) *FriendService {
	return &FriendService{friends: friends, logger: logger}
}

// Create persists a new friend
func (s *FriendService) Create(ctx context.Context, name string) (*models.Friend, error) {
	friend := &models.Friend{Name: name}
	if err := s.friends.Create(ctx, friend); err != nil {
		return nil, WrapInternal("friend persistence failed", err)
	}
	return friend, nil
}

// List returns a page of friends
func (s *FriendService) List(ctx context.Context, req models.PageRequest) (models.Page[models.Friend], error) {
	friends, total, err := s.friends.List(ctx, req)
	if err != nil {
		return models.Page[models.Friend]{}, WrapInternal("friend listing failed", err)
	}
	return models.NewPage(friends, req, total), nil
}

// Get returns the friend with the given id
func (s *FriendService) Get(ctx context.Context, id int64) (*models.Friend, error) {
	friend, err := s.friends.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFriendNotFound.WithDetail("id", id)
		}
		return nil, WrapInternal("friend lookup failed", err)
	}
	return friend, nil
}

// Update renames an existing friend
func (s *FriendService) Update(ctx context.Context, id int64, name string) (*models.Friend, error) {
	friend, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	friend.Name = name
	if err := s.friends.Update(ctx, friend); err != nil {
		return nil, WrapInternal("friend update failed", err)
	}
	return friend, nil
}

// Delete removes the friend with the given id. Deleting an unknown id
// is not an error.
func (s *FriendService) Delete(ctx context.Context, id int64) error {
	if err := s.friends.Delete(ctx, id); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return WrapInternal("friend deletion failed", err)
	}
	return nil
}
