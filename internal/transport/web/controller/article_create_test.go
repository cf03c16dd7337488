package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/article-manager/internal/command"
	"github.com/jbeshir/article-manager/internal/datasources/mocks"
	"github.com/jbeshir/article-manager/internal/domain"
)

func TestArticleCreate_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	validBody := `{"title":"New Article","author":"Ada","status":"Draft","content":"Body","summary":"Short"}`
	validForm := domain.ArticleForm{
		Title:   "New Article",
		Author:  "Ada",
		Status:  domain.ArticleStatusDraft,
		Content: "Body",
		Summary: "Short",
	}

	cases := []struct {
		name        string
		body        string
		wantForm    domain.ArticleForm
		createErr   error
		wantStatus  int
		wantMessage bool
		skipCreate  bool
	}{
		{
			name:       "successful_create",
			body:       validBody,
			wantForm:   validForm,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed_body",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
			skipCreate: true,
		},
		{
			name:        "missing_title",
			body:        `{"author":"Ada","status":"Draft"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: true,
			skipCreate:  true,
		},
		{
			name:        "unrecognised_status",
			body:        `{"title":"T","author":"Ada","status":"archived"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: true,
			skipCreate:  true,
		},
		{
			name:       "store_error",
			body:       validBody,
			wantForm:   validForm,
			createErr:  errors.New("storage error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockArticleCreator(t)

			created := domain.Article{
				ID:        51,
				Title:     tc.wantForm.Title,
				Author:    tc.wantForm.Author,
				Status:    tc.wantForm.Status,
				CreatedAt: testTime,
				Content:   tc.wantForm.Content,
				Summary:   tc.wantForm.Summary,
			}
			if !tc.skipCreate {
				if tc.createErr != nil {
					created = domain.Article{}
				}
				creator.EXPECT().
					CreateArticle(mock.Anything, tc.wantForm).
					Return(created, tc.createErr)
			}

			controller := ArticleCreate{
				CreateCmd: command.NewCreateArticle(creator),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/articles", strings.NewReader(tc.body))
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantMessage {
				var body map[string]string
				err := json.NewDecoder(rec.Body).Decode(&body)
				require.NoError(t, err)
				assert.NotEmpty(t, body["message"])
			}

			if tc.wantStatus == http.StatusCreated {
				var article domain.Article
				err := json.NewDecoder(rec.Body).Decode(&article)
				require.NoError(t, err)
				assert.Equal(t, created, article)
			}
		})
	}
}
