package repository

import (
	"strings"
	"testing"

	"media-watchlist/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchQuery_TextIsBoundNotInterpolated(t *testing.T) {
	hostile := `'; DROP TABLE "Media"; --`

	query, args, err := BuildSearchQuery(entity.SearchCategoryMedia, entity.SortNameAsc, hostile)
	require.NoError(t, err)

	assert.NotContains(t, query, "DROP TABLE")
	assert.Contains(t, query, "$1")
	require.Len(t, args, 1)
	assert.Equal(t, "%"+hostile+"%", args[0])
}

func TestBuildSearchQuery_OrderByFromWhitelist(t *testing.T) {
	tests := []struct {
		name     string
		category entity.SearchCategory
		sort     entity.SearchSort
		clause   string
	}{
		{"media name asc", entity.SearchCategoryMedia, entity.SortNameAsc, `m."MediaName" ASC`},
		{"media name desc", entity.SearchCategoryMedia, entity.SortNameDesc, `m."MediaName" DESC`},
		{"media rating desc", entity.SearchCategoryMedia, entity.SortRatingDesc, `avg_rating DESC NULLS LAST`},
		{"media year asc", entity.SearchCategoryMedia, entity.SortYearAsc, `m."ReleaseYear" ASC`},
		{"user name asc", entity.SearchCategoryUser, entity.SortNameAsc, `u."LastName" ASC`},
		{"user count desc", entity.SearchCategoryUser, entity.SortCountDesc, `review_count DESC`},
		{"genre rating asc", entity.SearchCategoryGenre, entity.SortRatingAsc, `avg_rating ASC NULLS FIRST`},
		{"genre count desc", entity.SearchCategoryGenre, entity.SortCountDesc, `media_count DESC`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := BuildSearchQuery(tt.category, tt.sort, "matrix")
			require.NoError(t, err)
			assert.Contains(t, query, "ORDER BY "+tt.clause)
		})
	}
}

func TestBuildSearchQuery_UnknownSortOmitsOrderBy(t *testing.T) {
	hostile := entity.SearchSort(`az; DROP TABLE "User"`)

	query, _, err := BuildSearchQuery(entity.SearchCategoryMedia, hostile, "matrix")
	require.NoError(t, err)

	assert.NotContains(t, query, "ORDER BY")
	assert.NotContains(t, query, "DROP TABLE")
}

func TestBuildSearchQuery_SortKeysAreCategoryScoped(t *testing.T) {
	// year_asc is only meaningful for media; for users it must degrade to
	// no ordering rather than leak another category's clause.
	query, _, err := BuildSearchQuery(entity.SearchCategoryUser, entity.SortYearAsc, "ana")
	require.NoError(t, err)

	assert.NotContains(t, query, "ORDER BY")
}

func TestBuildSearchQuery_UnknownCategory(t *testing.T) {
	_, _, err := BuildSearchQuery(entity.SearchCategory("platform"), entity.SortNameAsc, "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestBuildSearchQuery_TemplatesFilterOnBoundParameter(t *testing.T) {
	for _, category := range []entity.SearchCategory{
		entity.SearchCategoryMedia,
		entity.SearchCategoryUser,
		entity.SearchCategoryGenre,
	} {
		query, args, err := BuildSearchQuery(category, "", "neo")
		require.NoError(t, err)

		assert.True(t, strings.Contains(query, "ILIKE $1"), "category %s must filter via $1", category)
		assert.Equal(t, []any{"%neo%"}, args)
	}
}
