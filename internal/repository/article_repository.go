package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elcanhuseyn22/website/internal/domain"
)

const articleColumns = `
	a.id, a.title, a.content, a.author_id, u.username, a.created_at, a.updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (id, title, content, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, article.ID, article.Title, article.Content, article.AuthorID).
		Scan(&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID returns one article with its author's username.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	return r.getOne(ctx, `
		SELECT`+articleColumns+`
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`, id)
}

// GetOwned returns the article only if authorID owns it.
func (r *PostgresArticleRepository) GetOwned(ctx context.Context, id, authorID string) (*domain.Article, error) {
	return r.getOne(ctx, `
		SELECT`+articleColumns+`
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = $1 AND a.author_id = $2
	`, id, authorID)
}

// ListAll returns every article, newest first.
func (r *PostgresArticleRepository) ListAll(ctx context.Context) ([]domain.Article, error) {
	return r.list(ctx, `
		SELECT`+articleColumns+`
		FROM articles a
		JOIN users u ON u.id = a.author_id
		ORDER BY a.created_at DESC
	`)
}

// ListByAuthor returns the author's articles, newest first.
func (r *PostgresArticleRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	return r.list(ctx, `
		SELECT`+articleColumns+`
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.author_id = $1
		ORDER BY a.created_at DESC
	`, authorID)
}

// SearchByTitle returns articles whose title contains keyword as a substring.
// The keyword is passed as a query parameter, never spliced into the SQL text.
func (r *PostgresArticleRepository) SearchByTitle(ctx context.Context, keyword string) ([]domain.Article, error) {
	return r.list(ctx, `
		SELECT`+articleColumns+`
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.title LIKE '%' || $1 || '%'
		ORDER BY a.created_at DESC
	`, keyword)
}

// Update overwrites title and content. Matching on author_id as well as id
// re-verifies ownership inside the write itself.
func (r *PostgresArticleRepository) Update(ctx context.Context, id, authorID, title, content string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3 AND author_id = $4
	`, title, content, id, authorID)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the article, matching on both id and author_id.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id, authorID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM articles
		WHERE id = $1 AND author_id = $2
	`, id, authorID)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresArticleRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.AuthorUsername, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query article: %w", err)
	}
	return &a, nil
}

func (r *PostgresArticleRepository) list(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.AuthorUsername, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}
	return articles, nil
}
