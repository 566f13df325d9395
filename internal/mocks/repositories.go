// Package mocks provides testify-based test doubles for the repository
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/elcanhuseyn22/website/internal/domain"
)

// UserRepository is a mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// ArticleRepository is a mock of repository.ArticleRepository.
type ArticleRepository struct {
	mock.Mock
}

func (m *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *ArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ArticleRepository) GetOwned(ctx context.Context, id, authorID string) (*domain.Article, error) {
	args := m.Called(ctx, id, authorID)
	if a := args.Get(0); a != nil {
		return a.(*domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ArticleRepository) ListAll(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ArticleRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	args := m.Called(ctx, authorID)
	if a := args.Get(0); a != nil {
		return a.([]domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ArticleRepository) SearchByTitle(ctx context.Context, keyword string) ([]domain.Article, error) {
	args := m.Called(ctx, keyword)
	if a := args.Get(0); a != nil {
		return a.([]domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ArticleRepository) Update(ctx context.Context, id, authorID, title, content string) error {
	args := m.Called(ctx, id, authorID, title, content)
	return args.Error(0)
}

func (m *ArticleRepository) Delete(ctx context.Context, id, authorID string) error {
	args := m.Called(ctx, id, authorID)
	return args.Error(0)
}
