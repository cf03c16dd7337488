package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/article-manager/internal/datasources/mocks"
	"github.com/jbeshir/article-manager/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestCreateArticle_Execute(t *testing.T) {
	validForm := domain.ArticleForm{
		Title:   "T",
		Author:  "A",
		Status:  domain.ArticleStatusDraft,
		Content: "C",
		Summary: "S",
	}

	cases := []struct {
		name        string
		form        domain.ArticleForm
		storeErr    error
		wantField   string
		wantErr     bool
		skipCreator bool
	}{
		{
			name: "successful_create",
			form: validForm,
		},
		{
			name:        "missing_title",
			form:        domain.ArticleForm{Author: "A", Status: domain.ArticleStatusDraft},
			wantField:   "title",
			wantErr:     true,
			skipCreator: true,
		},
		{
			name:        "missing_author",
			form:        domain.ArticleForm{Title: "T", Status: domain.ArticleStatusDraft},
			wantField:   "author",
			wantErr:     true,
			skipCreator: true,
		},
		{
			name:        "unrecognised_status",
			form:        domain.ArticleForm{Title: "T", Author: "A", Status: "archived"},
			wantField:   "status",
			wantErr:     true,
			skipCreator: true,
		},
		{
			name:     "store_error",
			form:     validForm,
			storeErr: errors.New("storage exploded"),
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockArticleCreator(t)

			if !tc.skipCreator {
				created := domain.Article{ID: 42, Title: tc.form.Title}
				creator.EXPECT().
					CreateArticle(mock.Anything, tc.form).
					Return(created, tc.storeErr)
			}

			cmd := NewCreateArticle(creator)
			article, err := cmd.Execute(testContext(), CreateArticleRequest{Form: tc.form})

			if tc.wantErr {
				require.Error(t, err)
				if tc.wantField != "" {
					var ve ValidationError
					require.ErrorAs(t, err, &ve)
					assert.Equal(t, tc.wantField, ve.Field)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(42), article.ID)
		})
	}
}
