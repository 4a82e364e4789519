package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/application/alert/dto"
	"vigia/internal/application/alert/usecases"
	"vigia/internal/interfaces/http/handlers/testutil"
	"vigia/internal/shared/errors"
)

type mockCreateAlertUC struct {
	result  *usecases.CreateAlertResult
	err     error
	lastCmd usecases.CreateAlertCommand
}

func (m *mockCreateAlertUC) Execute(ctx context.Context, cmd usecases.CreateAlertCommand) (*usecases.CreateAlertResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListAlertsUC struct {
	result *dto.BoardDTO
	err    error
}

func (m *mockListAlertsUC) Execute(ctx context.Context) (*dto.BoardDTO, error) {
	return m.result, m.err
}

type mockSetOperatingUC struct {
	result  *dto.AlertDTO
	err     error
	lastCmd usecases.SetOperatingStatusCommand
}

func (m *mockSetOperatingUC) Execute(ctx context.Context, cmd usecases.SetOperatingStatusCommand) (*dto.AlertDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetStatsUC struct {
	result *dto.StatsDTO
	err    error
}

func (m *mockGetStatsUC) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	return m.result, m.err
}

type mockGetLastUpdateUC struct {
	result *usecases.LastUpdateResult
	err    error
}

func (m *mockGetLastUpdateUC) Execute(ctx context.Context) (*usecases.LastUpdateResult, error) {
	return m.result, m.err
}

type mockPurgeAlertsUC struct {
	result *usecases.PurgeAlertsResult
	err    error
}

func (m *mockPurgeAlertsUC) Execute(ctx context.Context) (*usecases.PurgeAlertsResult, error) {
	return m.result, m.err
}

func newTestAlertHandler(
	create *mockCreateAlertUC,
	list *mockListAlertsUC,
	setOp *mockSetOperatingUC,
	stats *mockGetStatsUC,
	lastUpdate *mockGetLastUpdateUC,
	purge *mockPurgeAlertsUC,
) *AlertHandler {
	if create == nil {
		create = &mockCreateAlertUC{}
	}
	if list == nil {
		list = &mockListAlertsUC{}
	}
	if setOp == nil {
		setOp = &mockSetOperatingUC{}
	}
	if stats == nil {
		stats = &mockGetStatsUC{}
	}
	if lastUpdate == nil {
		lastUpdate = &mockGetLastUpdateUC{}
	}
	if purge == nil {
		purge = &mockPurgeAlertsUC{}
	}
	return NewAlertHandler(create, list, setOp, stats, lastUpdate, purge)
}

func TestAlertHandler_CreateAlert_Success(t *testing.T) {
	create := &mockCreateAlertUC{
		result: &usecases.CreateAlertResult{
			AlertID:   42,
			Recipient: "6435800936",
			CreatedAt: time.Now(),
		},
	}
	handler := newTestAlertHandler(create, nil, nil, nil, nil, nil)

	reqBody := CreateAlertRequest{
		Description: "CM-98765 - Colhedora 8800 - Falha no motor",
		Equipment:   "Colhedora 8800",
		Unit:        "Usina Santa Fé",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/alerts", reqBody)

	handler.CreateAlert(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Colhedora 8800", create.lastCmd.Equipment)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var result usecases.CreateAlertResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, uint(42), result.AlertID)
}

func TestAlertHandler_CreateAlert_MissingDescription(t *testing.T) {
	handler := newTestAlertHandler(nil, nil, nil, nil, nil, nil)

	reqBody := map[string]string{"equipment": "Colhedora 8800"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/alerts", reqBody)

	handler.CreateAlert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestAlertHandler_ListAlerts_Success(t *testing.T) {
	list := &mockListAlertsUC{
		result: &dto.BoardDTO{
			Pending:   []dto.AlertDTO{{ID: 1, Bucket: "pending"}},
			Escalated: []dto.AlertDTO{},
			Overdue:   []dto.AlertDTO{},
			Closed:    []dto.AlertDTO{},
			Total:     1,
			Now:       time.Now(),
		},
	}
	handler := newTestAlertHandler(nil, list, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/alerts", nil)

	handler.ListAlerts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var board dto.BoardDTO
	require.NoError(t, json.Unmarshal(resp.Data, &board))
	assert.Len(t, board.Pending, 1)
	assert.Equal(t, 1, board.Total)
}

func TestAlertHandler_ListAlerts_Error(t *testing.T) {
	list := &mockListAlertsUC{err: errors.NewInternalError("database unavailable")}
	handler := newTestAlertHandler(nil, list, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/alerts", nil)

	handler.ListAlerts(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAlertHandler_SetOperatingStatus_Success(t *testing.T) {
	setOp := &mockSetOperatingUC{
		result: &dto.AlertDTO{ID: 7, OperatingStatus: "operating", Bucket: "closed"},
	}
	handler := newTestAlertHandler(nil, nil, setOp, nil, nil, nil)

	just := "Peça substituída"
	reqBody := SetOperatingStatusRequest{Status: "operating", Justification: &just}
	c, w := testutil.NewTestContext(http.MethodPatch, "/api/alerts/7/status", reqBody)
	testutil.SetURLParam(c, "id", "7")

	handler.SetOperatingStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), setOp.lastCmd.AlertID)
	assert.Equal(t, "operating", setOp.lastCmd.Status)
	require.NotNil(t, setOp.lastCmd.Justification)
	assert.Equal(t, "Peça substituída", *setOp.lastCmd.Justification)
}

func TestAlertHandler_SetOperatingStatus_InvalidID(t *testing.T) {
	handler := newTestAlertHandler(nil, nil, nil, nil, nil, nil)

	reqBody := SetOperatingStatusRequest{Status: "operating"}
	c, w := testutil.NewTestContext(http.MethodPatch, "/api/alerts/abc/status", reqBody)
	testutil.SetURLParam(c, "id", "abc")

	handler.SetOperatingStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlertHandler_SetOperatingStatus_NotFound(t *testing.T) {
	setOp := &mockSetOperatingUC{err: errors.NewNotFoundError("alert not found")}
	handler := newTestAlertHandler(nil, nil, setOp, nil, nil, nil)

	reqBody := SetOperatingStatusRequest{Status: "not_operating"}
	c, w := testutil.NewTestContext(http.MethodPatch, "/api/alerts/99/status", reqBody)
	testutil.SetURLParam(c, "id", "99")

	handler.SetOperatingStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAlertHandler_GetStats_Success(t *testing.T) {
	stats := &mockGetStatsUC{
		result: &dto.StatsDTO{Total: 5, Answered: 3, Unanswered: 2, Pending: 2, Closed: 1},
	}
	handler := newTestAlertHandler(nil, nil, nil, stats, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/alerts/stats", nil)

	handler.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result dto.StatsDTO
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, int64(2), result.Unanswered)
}

func TestAlertHandler_GetLastUpdate_Success(t *testing.T) {
	now := time.Now()
	lastUpdate := &mockGetLastUpdateUC{
		result: &usecases.LastUpdateResult{LastUpdate: &now, Count: 3},
	}
	handler := newTestAlertHandler(nil, nil, nil, nil, lastUpdate, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/alerts/last-update", nil)

	handler.GetLastUpdate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result usecases.LastUpdateResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, 3, result.Count)
	require.NotNil(t, result.LastUpdate)
}

func TestAlertHandler_PurgeAlerts_Success(t *testing.T) {
	purge := &mockPurgeAlertsUC{result: &usecases.PurgeAlertsResult{Deleted: 12}}
	handler := newTestAlertHandler(nil, nil, nil, nil, nil, purge)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/alerts", nil)

	handler.PurgeAlerts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result usecases.PurgeAlertsResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, int64(12), result.Deleted)
}
