package domain

import (
	"time"
)

type ArticleStatus string

const ArticleStatusPublished ArticleStatus = "Published"
const ArticleStatusDraft ArticleStatus = "Draft"

var ValidArticleStatuses = []ArticleStatus{
	ArticleStatusPublished,
	ArticleStatusDraft,
}

// Article is a single entry in the managed collection.
// UpdatedAt may be absent on records persisted by older writers; sorting by
// it falls back to CreatedAt.
type Article struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Status    ArticleStatus `json:"status"`
	Author    string        `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
	Content   string        `json:"content,omitempty"`
	Summary   string        `json:"summary,omitempty"`
}

// LastModifiedAt returns UpdatedAt, falling back to CreatedAt for articles
// that have never been updated.
func (a Article) LastModifiedAt() time.Time {
	if a.UpdatedAt != nil {
		return *a.UpdatedAt
	}
	return a.CreatedAt
}

// ArticleForm is the caller-supplied data for creating an article.
// The store assigns ID and timestamps itself.
type ArticleForm struct {
	Title   string        `json:"title"`
	Status  ArticleStatus `json:"status"`
	Author  string        `json:"author"`
	Content string        `json:"content"`
	Summary string        `json:"summary"`
}

// ArticlePatch is a partial update. Nil fields are left unchanged.
type ArticlePatch struct {
	Title   *string        `json:"title,omitempty"`
	Status  *ArticleStatus `json:"status,omitempty"`
	Author  *string        `json:"author,omitempty"`
	Content *string        `json:"content,omitempty"`
	Summary *string        `json:"summary,omitempty"`
}

// Apply merges the patch onto an article field by field, leaving ID and
// CreatedAt untouched. Callers are responsible for setting UpdatedAt.
func (p ArticlePatch) Apply(a Article) Article {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Summary != nil {
		a.Summary = *p.Summary
	}
	return a
}

type ArticleFilters struct {
	Search   string
	Statuses []ArticleStatus
	Author   string
}

type ArticleListOptions struct {
	Sort           ArticleSort
	Page, PageSize int
}

type ArticleSort struct {
	Field ArticleSortField
	Desc  bool
}

// DefaultArticleSort is newest first, matching the dashboard's default view.
var DefaultArticleSort = ArticleSort{Field: ArticleSortFieldCreatedAt, Desc: true}

type ArticleSortField string

const ArticleSortFieldTitle ArticleSortField = "title"
const ArticleSortFieldAuthor ArticleSortField = "author"
const ArticleSortFieldCreatedAt ArticleSortField = "createdAt"
const ArticleSortFieldUpdatedAt ArticleSortField = "updatedAt"

var ValidArticleSortFields = []ArticleSortField{
	ArticleSortFieldTitle,
	ArticleSortFieldAuthor,
	ArticleSortFieldCreatedAt,
	ArticleSortFieldUpdatedAt,
}

// Pagination describes the window a listing call returned.
// Page is echoed back from the caller unclamped.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
