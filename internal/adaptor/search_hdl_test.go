package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"media-watchlist/internal/dto/request"
	"media-watchlist/internal/dto/response"
	"media-watchlist/internal/usecase"
	"media-watchlist/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSearchService struct {
	result any
	err    error
	gotReq *request.SearchRequest
}

func (f *fakeSearchService) Search(ctx context.Context, req *request.SearchRequest) (any, error) {
	f.gotReq = req
	return f.result, f.err
}

func TestSearchHandler_QueryParamsReachService(t *testing.T) {
	fake := &fakeSearchService{
		result: []response.MediaSearchResponse{{MediaID: 1, MediaName: "The Matrix"}},
	}
	handler := NewSearchHandler(fake, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=matrix&category=media&sort=az", nil)
	rec := httptest.NewRecorder()

	handler.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fake.gotReq)
	assert.Equal(t, "matrix", fake.gotReq.Query)
	assert.Equal(t, "media", fake.gotReq.Category)
	assert.Equal(t, "az", fake.gotReq.Sort)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
}

func TestSearchHandler_InvalidCategory(t *testing.T) {
	fake := &fakeSearchService{
		err: fmt.Errorf("%w: %q", usecase.ErrInvalidCategory, "platform"),
	}
	handler := NewSearchHandler(fake, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=x&category=platform", nil)
	rec := httptest.NewRecorder()

	handler.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Invalid search category", body.Message)
}

func TestSearchHandler_StoreFailureIsOpaque(t *testing.T) {
	fake := &fakeSearchService{
		err: fmt.Errorf("%w: %v", usecase.ErrQueryExecution, `pq: column "MediaName" does not exist`),
	}
	handler := NewSearchHandler(fake, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=x&category=media", nil)
	rec := httptest.NewRecorder()

	handler.Search(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "MediaName", "store details must not leak to the client")
}
