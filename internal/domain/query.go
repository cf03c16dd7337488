package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterArticles returns the articles matching the given filters, in their
// original relative order. The input slice is never mutated.
//
// A record matches when every filter passes: the search term (empty matches
// everything) appears case-insensitively in title, author, or content; the
// status is in the status set (an empty set passes all statuses); and the
// author filter (empty matches everything) appears case-insensitively in the
// author field.
func FilterArticles(articles []Article, filters ArticleFilters) []Article {
	search := strings.ToLower(filters.Search)
	author := strings.ToLower(filters.Author)

	matched := make([]Article, 0, len(articles))
	for _, a := range articles {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Author), search) &&
			!strings.Contains(strings.ToLower(a.Content), search) {
			continue
		}

		if len(filters.Statuses) > 0 && !slices.Contains(filters.Statuses, a.Status) {
			continue
		}

		if author != "" && !strings.Contains(strings.ToLower(a.Author), author) {
			continue
		}

		matched = append(matched, a)
	}

	return matched
}

// SortArticles stably sorts articles in place by the given sort key.
// A zero-valued sort falls back to DefaultArticleSort. Records comparing
// equal under the key keep their prior relative order.
func SortArticles(articles []Article, sort ArticleSort) {
	if sort.Field == "" {
		sort = DefaultArticleSort
	}

	// Collators are stateful, so one per call rather than one per package.
	col := collate.New(language.English)

	slices.SortStableFunc(articles, func(a, b Article) int {
		var cmp int
		switch sort.Field {
		case ArticleSortFieldTitle:
			cmp = col.CompareString(a.Title, b.Title)
		case ArticleSortFieldAuthor:
			cmp = col.CompareString(a.Author, b.Author)
		case ArticleSortFieldCreatedAt:
			cmp = a.CreatedAt.Compare(b.CreatedAt)
		case ArticleSortFieldUpdatedAt:
			cmp = a.LastModifiedAt().Compare(b.LastModifiedAt())
		}

		if sort.Desc {
			cmp = -cmp
		}
		return cmp
	})
}

// PaginateArticles slices out the 1-indexed page of the given size and
// reports totals. Pages beyond the end yield an empty slice with the
// caller's page echoed back unclamped; guarding against out-of-range pages
// is the caller's job. pageSize must be positive.
func PaginateArticles(articles []Article, page, pageSize int) ([]Article, Pagination) {
	pagination := Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(articles),
		TotalPages: (len(articles) + pageSize - 1) / pageSize,
	}

	start := (page - 1) * pageSize
	if start < 0 || start >= len(articles) {
		return []Article{}, pagination
	}

	end := min(start+pageSize, len(articles))
	return articles[start:end:end], pagination
}
