package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/article-manager/internal/datasources/mocks"
	"github.com/jbeshir/article-manager/internal/domain"
)

func TestArticleGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	testArticle := domain.Article{
		ID:        7,
		Title:     "Test Article",
		Author:    "Ada",
		Status:    domain.ArticleStatusPublished,
		CreatedAt: testTime,
		Content:   "Body text",
		Summary:   "Short form",
	}

	cases := []struct {
		name          string
		articleID     string
		setupContext  func(r *http.Request) *http.Request
		getErr        error
		wantStatus    int
		wantCacheCtrl string
		skipGet       bool
	}{
		{
			name:          "successful_fetch",
			articleID:     "7",
			setupContext:  testContext(),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
		},
		{
			name:          "no_cache_for_authenticated_user",
			articleID:     "7",
			setupContext:  testContextWithUser(domain.User{ID: "u-1", Role: domain.UserRoleViewer}),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "",
		},
		{
			name:         "unknown_article",
			articleID:    "7",
			setupContext: testContext(),
			getErr:       domain.ErrNotFound,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "non_numeric_id",
			articleID:    "seven",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
			skipGet:      true,
		},
		{
			name:         "fetch_error",
			articleID:    "7",
			setupContext: testContext(),
			getErr:       errors.New("storage error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockArticleGetter(t)

			if !tc.skipGet {
				article := testArticle
				if tc.getErr != nil {
					article = domain.Article{}
				}
				getter.EXPECT().
					GetArticle(mock.Anything, int64(7)).
					Return(article, tc.getErr)
			}

			controller := ArticleGet{
				Getter:      getter,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/articles/"+tc.articleID, nil)
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"article_id": tc.articleID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				if tc.wantCacheCtrl != "" {
					assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
				} else {
					assert.Empty(t, rec.Header().Get("Cache-Control"))
				}

				var article domain.Article
				err := json.NewDecoder(rec.Body).Decode(&article)
				require.NoError(t, err)
				assert.Equal(t, testArticle, article)
			}
		})
	}
}
