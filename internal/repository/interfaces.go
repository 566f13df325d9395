package repository

import (
	"context"

	"github.com/elcanhuseyn22/website/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrDuplicateUsername or
	// domain.ErrDuplicateEmail when a unique constraint is violated.
	Create(ctx context.Context, user *domain.User) error
	// GetByUsername returns the user with the given username, or
	// domain.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetByID returns the user with the given id, or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// Create inserts a new article.
	Create(ctx context.Context, article *domain.Article) error
	// GetByID returns one article with its author's username, or
	// domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	// GetOwned returns the article only if authorID owns it; otherwise
	// domain.ErrNotFound.
	GetOwned(ctx context.Context, id, authorID string) (*domain.Article, error)
	// ListAll returns every article, newest first.
	ListAll(ctx context.Context) ([]domain.Article, error)
	// ListByAuthor returns the author's articles, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error)
	// SearchByTitle returns articles whose title contains keyword as a
	// substring.
	SearchByTitle(ctx context.Context, keyword string) ([]domain.Article, error)
	// Update overwrites title and content. The statement matches on both id
	// and authorID so ownership is re-verified at write time; a miss on
	// either returns domain.ErrNotFound with no rows changed.
	Update(ctx context.Context, id, authorID, title, content string) error
	// Delete removes the article, matching on both id and authorID like
	// Update.
	Delete(ctx context.Context, id, authorID string) error
}
