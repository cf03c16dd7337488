package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/article-manager/internal/datasources/mocks"
	"github.com/jbeshir/article-manager/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestUpdateArticle_Execute(t *testing.T) {
	emptyTitle := ""
	badStatus := domain.ArticleStatus("archived")

	cases := []struct {
		name        string
		patch       domain.ArticlePatch
		storeErr    error
		wantErr     error
		wantValFld  string
		skipUpdater bool
	}{
		{
			name:  "successful_update",
			patch: domain.ArticlePatch{Title: strPtr("New")},
		},
		{
			name:  "empty_patch_still_touches_updated_at",
			patch: domain.ArticlePatch{},
		},
		{
			name:        "empty_title_rejected",
			patch:       domain.ArticlePatch{Title: &emptyTitle},
			wantValFld:  "title",
			skipUpdater: true,
		},
		{
			name:        "unrecognised_status_rejected",
			patch:       domain.ArticlePatch{Status: &badStatus},
			wantValFld:  "status",
			skipUpdater: true,
		},
		{
			name:     "not_found_passes_through",
			patch:    domain.ArticlePatch{Title: strPtr("New")},
			storeErr: domain.ErrNotFound,
			wantErr:  domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updater := mocks.NewMockArticleUpdater(t)

			if !tc.skipUpdater {
				updated := domain.Article{ID: 7}
				updater.EXPECT().
					UpdateArticle(mock.Anything, int64(7), tc.patch).
					Return(updated, tc.storeErr)
			}

			cmd := NewUpdateArticle(updater)
			article, err := cmd.Execute(testContext(), UpdateArticleRequest{ID: 7, Patch: tc.patch})

			if tc.wantValFld != "" {
				var ve ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tc.wantValFld, ve.Field)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), article.ID)
		})
	}
}

func TestDeleteArticle_Execute(t *testing.T) {
	cases := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{
			name: "successful_delete",
		},
		{
			name:     "not_found_passes_through",
			storeErr: domain.ErrNotFound,
			wantErr:  domain.ErrNotFound,
		},
		{
			name:     "store_error_wrapped",
			storeErr: errors.New("storage exploded"),
			wantErr:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleter := mocks.NewMockArticleDeleter(t)
			deleter.EXPECT().
				DeleteArticle(mock.Anything, int64(3)).
				Return(tc.storeErr)

			cmd := NewDeleteArticle(deleter)
			_, err := cmd.Execute(testContext(), DeleteArticleRequest{ID: 3})

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.storeErr != nil:
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrNotFound)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
