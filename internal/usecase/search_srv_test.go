package usecase

import (
	"context"
	"errors"
	"testing"

	"media-watchlist/internal/data/entity"
	"media-watchlist/internal/data/repository"
	"media-watchlist/internal/dto/request"
	"media-watchlist/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSearchRepo struct {
	media  []*entity.MediaSearchResult
	users  []*entity.UserSearchResult
	genres []*entity.GenreSearchResult
	err    error

	gotText string
	gotSort entity.SearchSort
	calls   int
}

func (f *fakeSearchRepo) SearchMedia(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.MediaSearchResult, error) {
	f.gotText, f.gotSort = text, sort
	f.calls++
	return f.media, f.err
}

func (f *fakeSearchRepo) SearchUsers(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.UserSearchResult, error) {
	f.gotText, f.gotSort = text, sort
	f.calls++
	return f.users, f.err
}

func (f *fakeSearchRepo) SearchGenres(ctx context.Context, text string, sort entity.SearchSort) ([]*entity.GenreSearchResult, error) {
	f.gotText, f.gotSort = text, sort
	f.calls++
	return f.genres, f.err
}

func newSearchFixture(fake *fakeSearchRepo) SearchService {
	repo := &repository.Repository{Search: fake}
	return NewSearchService(repo, zap.NewNop())
}

func TestSearch_MediaCategory(t *testing.T) {
	fake := &fakeSearchRepo{
		media: []*entity.MediaSearchResult{
			{MediaID: 1, MediaName: "The Matrix", MediaType: "Movie", ReleaseYear: 1999, ReviewCount: 3},
		},
	}
	svc := newSearchFixture(fake)

	result, err := svc.Search(context.Background(), &request.SearchRequest{
		Query:    "matrix",
		Category: "media",
		Sort:     "rating_desc",
	})
	require.NoError(t, err)

	responses, ok := result.([]response.MediaSearchResponse)
	require.True(t, ok, "media search must return media responses, got %T", result)
	require.Len(t, responses, 1)
	assert.Equal(t, "The Matrix", responses[0].MediaName)

	assert.Equal(t, "matrix", fake.gotText)
	assert.Equal(t, entity.SortRatingDesc, fake.gotSort)
}

func TestSearch_CategoryIsNormalized(t *testing.T) {
	fake := &fakeSearchRepo{}
	svc := newSearchFixture(fake)

	_, err := svc.Search(context.Background(), &request.SearchRequest{
		Query:    "ana",
		Category: "  User ",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
}

func TestSearch_UnknownSortPassesThrough(t *testing.T) {
	// The sort key is forwarded untouched; degrading an unrecognized key to
	// no ordering is the query builder's job.
	fake := &fakeSearchRepo{}
	svc := newSearchFixture(fake)

	_, err := svc.Search(context.Background(), &request.SearchRequest{
		Query:    "ana",
		Category: "genre",
		Sort:     "newest_first",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SearchSort("newest_first"), fake.gotSort)
}

func TestSearch_InvalidCategory(t *testing.T) {
	fake := &fakeSearchRepo{}
	svc := newSearchFixture(fake)

	_, err := svc.Search(context.Background(), &request.SearchRequest{
		Query:    "x",
		Category: "platform",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Zero(t, fake.calls, "an invalid category must never reach the store")
}

func TestSearch_StoreFailure(t *testing.T) {
	fake := &fakeSearchRepo{err: errors.New("connection refused")}
	svc := newSearchFixture(fake)

	_, err := svc.Search(context.Background(), &request.SearchRequest{
		Query:    "x",
		Category: "genre",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryExecution)
}
