package articlestore

import (
	"fmt"
	"time"

	"github.com/jbeshir/article-manager/internal/domain"
)

var seedAuthors = []string{
	"John Doe",
	"Jane Smith",
	"Bob Johnson",
	"Alice Brown",
	"Charlie Wilson",
	"Eva Davis",
}

var seedTitles = []string{
	"Getting Started with React Hooks",
	"Advanced TypeScript Patterns",
	"Building Scalable Web Applications",
	"The Future of Frontend Development",
	"Performance Optimization Tips",
	"Modern CSS Techniques",
	"State Management Best Practices",
	"Testing Strategies for React",
	"Accessibility in Web Development",
	"API Design Principles",
	"Database Optimization Techniques",
	"Microservices Architecture",
	"Cloud Computing Fundamentals",
	"DevOps Best Practices",
	"Security in Modern Applications",
}

// SeedArticles generates the deterministic sample collection used when no
// persisted collection exists. Authors and titles cycle through fixed pools,
// creation dates descend one day per index from now, updatedAt trails
// createdAt by up to two index steps, and every 4th record is a draft.
func SeedArticles(count int, now time.Time) []domain.Article {
	articles := make([]domain.Article, 0, count)
	for index := 0; index < count; index++ {
		baseTitle := seedTitles[index%len(seedTitles)]
		title := baseTitle
		if index >= len(seedTitles) {
			title = fmt.Sprintf("%s %d", baseTitle, index/len(seedTitles)+1)
		}

		status := domain.ArticleStatusPublished
		if index%4 == 0 {
			status = domain.ArticleStatusDraft
		}

		updatedAt := now.Add(-time.Duration(max(0, index-2)) * 24 * time.Hour)

		articles = append(articles, domain.Article{
			ID:        int64(index + 1),
			Title:     title,
			Status:    status,
			Author:    seedAuthors[index%len(seedAuthors)],
			CreatedAt: now.Add(-time.Duration(index) * 24 * time.Hour),
			UpdatedAt: &updatedAt,
			Content: fmt.Sprintf(
				"This is the content for %s. Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
				baseTitle,
			),
			Summary: fmt.Sprintf("A brief summary of %s.", baseTitle),
		})
	}

	return articles
}
