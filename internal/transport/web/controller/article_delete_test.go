package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/datasources/mocks"
	"github.com/jbeshir/article-manager/internal/domain"
)

func TestArticleDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		articleID  string
		deleteErr  error
		wantStatus int
		skipDelete bool
	}{
		{
			name:       "successful_delete",
			articleID:  "7",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unknown_article",
			articleID:  "7",
			deleteErr:  domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non_numeric_id",
			articleID:  "seven",
			wantStatus: http.StatusBadRequest,
			skipDelete: true,
		},
		{
			name:       "store_error",
			articleID:  "7",
			deleteErr:  errors.New("storage error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleter := mocks.NewMockArticleDeleter(t)

			if !tc.skipDelete {
				deleter.EXPECT().
					DeleteArticle(mock.Anything, int64(7)).
					Return(tc.deleteErr)
			}

			controller := ArticleDelete{
				DeleteCmd: command.NewDeleteArticle(deleter),
			}

			req := httptest.NewRequest(http.MethodDelete, "/v1/articles/"+tc.articleID, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"article_id": tc.articleID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
