package controller

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/jbeshir/article-manager/internal/domain"
)

const defaultPage = 1
const defaultPageSize = 10
const maxPageSize = 100

func articleFiltersFromQuery(q url.Values) (domain.ArticleFilters, error) {
	var filters domain.ArticleFilters

	filters.Search = q.Get("search")
	filters.Author = q.Get("author")

	if q.Has("status") {
		for _, s := range strings.Split(q.Get("status"), ",") {
			status := domain.ArticleStatus(s)
			if !slices.Contains(domain.ValidArticleStatuses, status) {
				return domain.ArticleFilters{}, fmt.Errorf("unrecognised article status: %s", s)
			}
			filters.Statuses = append(filters.Statuses, status)
		}
	}

	return filters, nil
}

func listOptionsFromQuery(q url.Values) (domain.ArticleListOptions, error) {
	var options domain.ArticleListOptions

	if q.Has("page") {
		page, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return domain.ArticleListOptions{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if page < 1 {
			return domain.ArticleListOptions{}, fmt.Errorf("invalid page value [%d]", page)
		}
		options.Page = int(page)
	} else {
		options.Page = defaultPage
	}

	if q.Has("page_size") {
		pageSize, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return domain.ArticleListOptions{}, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if pageSize > maxPageSize {
			return domain.ArticleListOptions{}, fmt.Errorf("page size [%d] exceeds limit [%d]",
				pageSize, int64(maxPageSize))
		}
		if pageSize < 1 {
			return domain.ArticleListOptions{}, fmt.Errorf("invalid page size value [%d]", pageSize)
		}
		options.PageSize = int(pageSize)
	} else {
		options.PageSize = defaultPageSize
	}

	options.Sort = domain.DefaultArticleSort
	if q.Has("sort") {
		ordering := q.Get("sort")

		field := ordering
		desc := false
		if strings.HasSuffix(ordering, "_desc") {
			field = ordering[:len(ordering)-5]
			desc = true
		}

		if !slices.Contains(domain.ValidArticleSortFields, domain.ArticleSortField(field)) {
			return domain.ArticleListOptions{}, fmt.Errorf("unrecognised article sort field: %s", field)
		}

		options.Sort = domain.ArticleSort{
			Field: domain.ArticleSortField(field),
			Desc:  desc,
		}
	}

	return options, nil
}

func articleIDFromPath(vars map[string]string) (int64, error) {
	id, err := strconv.ParseInt(vars["article_id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse article ID from path: %w", err)
	}
	return id, nil
}
