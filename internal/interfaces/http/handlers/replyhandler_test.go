package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/application/reply/dto"
	"vigia/internal/application/reply/usecases"
	"vigia/internal/interfaces/http/handlers/testutil"
)

type mockListRepliesUC struct {
	result    []dto.ReplyDTO
	err       error
	lastQuery usecases.ListRepliesQuery
}

func (m *mockListRepliesUC) Execute(ctx context.Context, query usecases.ListRepliesQuery) ([]dto.ReplyDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

func TestReplyHandler_ListReplies_Success(t *testing.T) {
	list := &mockListRepliesUC{
		result: []dto.ReplyDTO{
			{ID: 2, ChatID: 6435800936, Text: "16:30", Outcome: "accepted", ReceivedAt: time.Now()},
			{ID: 1, ChatID: 6435800936, Text: "mais tarde", Outcome: "invalid_format", ReceivedAt: time.Now().Add(-time.Minute)},
		},
	}
	handler := NewReplyHandler(list)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/replies", nil)

	handler.ListReplies(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var replies []dto.ReplyDTO
	require.NoError(t, json.Unmarshal(resp.Data, &replies))
	require.Len(t, replies, 2)
	assert.Equal(t, "accepted", replies[0].Outcome)
}

func TestReplyHandler_ListReplies_CustomLimit(t *testing.T) {
	list := &mockListRepliesUC{result: []dto.ReplyDTO{}}
	handler := NewReplyHandler(list)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/replies", nil)
	testutil.SetQueryParams(c, map[string]string{"limit": "10"})

	handler.ListReplies(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, list.lastQuery.Limit)
}

func TestReplyHandler_ListReplies_InvalidLimit(t *testing.T) {
	handler := NewReplyHandler(&mockListRepliesUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/replies", nil)
	testutil.SetQueryParams(c, map[string]string{"limit": "abc"})

	handler.ListReplies(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
