package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elcanhuseyn22/website/internal/auth"
	"github.com/elcanhuseyn22/website/internal/domain"
	"github.com/elcanhuseyn22/website/internal/forms"
	"github.com/elcanhuseyn22/website/internal/logger"
	"github.com/elcanhuseyn22/website/internal/metrics"
	"github.com/elcanhuseyn22/website/internal/middleware"
	"github.com/elcanhuseyn22/website/internal/repository"
)

// ArticleHandler handles article browsing, authoring and search.
type ArticleHandler struct {
	articles repository.ArticleRepository
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles repository.ArticleRepository) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// Dashboard handles GET /dashboard - the current user's articles.
func (h *ArticleHandler) Dashboard(c *gin.Context) {
	p := auth.MustPrincipal(c)

	articles, err := h.articles.ListByAuthor(c.Request.Context(), p.UserID)
	if err != nil {
		h.serverError(c, "Failed to list articles", err)
		return
	}

	render(c, http.StatusOK, "dashboard", gin.H{
		"username": p.Username,
		"articles": articleList(articles),
	})
}

// ShowAdd handles GET /addarticle
func (h *ArticleHandler) ShowAdd(c *gin.Context) {
	render(c, http.StatusOK, "addarticle", gin.H{"form": forms.ArticleForm{}})
}

// Add handles POST /addarticle
func (h *ArticleHandler) Add(c *gin.Context) {
	var form forms.ArticleForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		render(c, http.StatusBadRequest, "addarticle", gin.H{
			"form":   form,
			"errors": forms.FieldErrors(err),
		})
		return
	}

	p := auth.MustPrincipal(c)
	article := &domain.Article{
		ID:       uuid.New().String(),
		Title:    form.Title,
		Content:  form.Content,
		AuthorID: p.UserID,
	}

	if err := h.articles.Create(c.Request.Context(), article); err != nil {
		h.serverError(c, "Failed to create article", err)
		return
	}

	metrics.ArticleWritesTotal.WithLabelValues("create").Inc()
	logger.WithUsername(p.Username).Info("Article created",
		slog.String("article_id", article.ID))

	auth.AddFlash(c, auth.FlashSuccess, "Article added successfully.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// List handles GET /articles - the public article listing.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to list articles", err)
		return
	}

	render(c, http.StatusOK, "articles", gin.H{"articles": articleList(articles)})
}

// Detail handles GET /article/:id - the public article view. A missing id is
// a distinct not-found response, not an empty page.
func (h *ArticleHandler) Detail(c *gin.Context) {
	article, err := h.articles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.serverError(c, "Failed to fetch article", err)
		return
	}

	render(c, http.StatusOK, "article", gin.H{"article": article})
}

// Delete handles GET /delete/:id. The delete statement matches on both the
// article id and the session user, so a foreign or nonexistent id changes
// nothing.
func (h *ArticleHandler) Delete(c *gin.Context) {
	p := auth.MustPrincipal(c)
	id := c.Param("id")

	err := h.articles.Delete(c.Request.Context(), id, p.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			auth.AddFlash(c, auth.FlashDanger, "No such article, or you have no permission to delete it!")
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.serverError(c, "Failed to delete article", err)
		return
	}

	metrics.ArticleWritesTotal.WithLabelValues("delete").Inc()
	logger.WithUsername(p.Username).Info("Article deleted",
		slog.String("article_id", id))

	auth.AddFlash(c, auth.FlashInfo, "Article deleted successfully.")
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowEdit handles GET /edit/:id - the pre-populated edit form.
func (h *ArticleHandler) ShowEdit(c *gin.Context) {
	p := auth.MustPrincipal(c)

	article, err := h.articles.GetOwned(c.Request.Context(), c.Param("id"), p.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			auth.AddFlash(c, auth.FlashDanger, "No such article, or you have no permission to edit it!")
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.serverError(c, "Failed to fetch article", err)
		return
	}

	render(c, http.StatusOK, "edit", gin.H{
		"form": forms.ArticleForm{Title: article.Title, Content: article.Content},
	})
}

// Edit handles POST /edit/:id. Ownership is re-verified inside the UPDATE
// itself, so a stale or forged form cannot overwrite another user's article.
func (h *ArticleHandler) Edit(c *gin.Context) {
	var form forms.ArticleForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		render(c, http.StatusBadRequest, "edit", gin.H{
			"form":   form,
			"errors": forms.FieldErrors(err),
		})
		return
	}

	p := auth.MustPrincipal(c)
	id := c.Param("id")

	err := h.articles.Update(c.Request.Context(), id, p.UserID, form.Title, form.Content)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			auth.AddFlash(c, auth.FlashDanger, "No such article, or you have no permission to edit it!")
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.serverError(c, "Failed to update article", err)
		return
	}

	metrics.ArticleWritesTotal.WithLabelValues("update").Inc()
	logger.WithUsername(p.Username).Info("Article updated",
		slog.String("article_id", id))

	auth.AddFlash(c, auth.FlashSuccess, "Article updated successfully.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// SearchRedirect handles GET /search - searches are submitted, not linked.
func (h *ArticleHandler) SearchRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// Search handles POST /search - substring match over article titles.
func (h *ArticleHandler) Search(c *gin.Context) {
	var form forms.SearchForm
	_ = c.ShouldBind(&form)

	articles, err := h.articles.SearchByTitle(c.Request.Context(), form.Keyword)
	if err != nil {
		h.serverError(c, "Failed to search articles", err)
		return
	}

	if len(articles) == 0 {
		auth.AddFlash(c, auth.FlashWarning, "No articles matched your search.")
		c.Redirect(http.StatusSeeOther, "/articles")
		return
	}

	render(c, http.StatusOK, "articles", gin.H{
		"articles": articleList(articles),
		"keyword":  form.Keyword,
	})
}

func (h *ArticleHandler) serverError(c *gin.Context, msg string, err error) {
	logger.WithRequestID(middleware.GetRequestID(c)).Error(msg,
		slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// articleList keeps an empty result an empty JSON array rather than null.
func articleList(articles []domain.Article) []domain.Article {
	if articles == nil {
		return []domain.Article{}
	}
	return articles
}
