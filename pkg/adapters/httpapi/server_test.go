package httpapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	packlist "github.com/wanderkit/packlist"
	"github.com/wanderkit/packlist/pkg/adapters/httpapi"
	"github.com/wanderkit/packlist/pkg/adapters/memory"
	"github.com/wanderkit/packlist/pkg/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	catalog, err := memory.NewCatalog(domain.ChecklistDefinition{
		ID:   "hiking",
		Name: "Hiking",
		Items: []domain.ItemDefinition{
			{FullName: "Tent"},
			{FullName: "Lamp"},
		},
	})
	require.NoError(t, err)

	assistant, err := packlist.New(catalog)
	require.NoError(t, err)

	ts := httptest.NewServer(httpapi.NewHandler(assistant, nil))
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, ts *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postEvent(t *testing.T, ts *httptest.Server, userID string, ev httpapi.EventRequest) (int, httpapi.EventResponse) {
	t.Helper()
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	resp, err := ts.Client().Post(
		fmt.Sprintf("%s/v1/sessions/%s/events", ts.URL, userID),
		"application/json",
		bytes.NewReader(body),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out httpapi.EventResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func TestHandler_Health(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, ts, "/healthz", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestHandler_Checklists(t *testing.T) {
	ts := newTestServer(t)

	var summaries []domain.ChecklistSummary
	resp := getJSON(t, ts, "/v1/checklists", &summaries)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, summaries, 1)
	assert.Equal(t, "hiking", summaries[0].ID)
	assert.Equal(t, 2, summaries[0].ItemCount)

	var def domain.ChecklistDefinition
	resp = getJSON(t, ts, "/v1/checklists/hiking", &def)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tent", def.Items[0].FullName)

	resp = getJSON(t, ts, "/v1/checklists/sailing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_EventFlow(t *testing.T) {
	ts := newTestServer(t)

	status, out := postEvent(t, ts, "alice", httpapi.EventRequest{Type: "choose", ChecklistID: "hiking"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.PhaseAsking, out.Session.Phase)
	assert.Equal(t, domain.RenderPromptItem, out.Render.Type)

	status, out = postEvent(t, ts, "alice", httpapi.EventRequest{Type: "answer", Disposition: "take"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, out.Session.Cursor)

	status, out = postEvent(t, ts, "alice", httpapi.EventRequest{Type: "answer", Disposition: "skip"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.PhaseReviewing, out.Session.Phase)
	assert.Equal(t, domain.RenderSummary, out.Render.Type)

	// Rejections still answer 200: the error is a rendering instruction,
	// not a transport failure.
	status, out = postEvent(t, ts, "alice", httpapi.EventRequest{Type: "answer", Disposition: "take"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.RenderError, out.Render.Type)
	assert.Equal(t, domain.PhaseReviewing, out.Session.Phase)

	var sess domain.Session
	resp := getJSON(t, ts, "/v1/sessions/alice", &sess)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.PhaseReviewing, sess.Phase)
}

func TestHandler_SessionLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := getJSON(t, ts, "/v1/sessions/alice", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var empty []string
	resp = getJSON(t, ts, "/v1/sessions", &empty)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, empty)

	status, _ := postEvent(t, ts, "alice", httpapi.EventRequest{Type: "choose", ChecklistID: "hiking"})
	require.Equal(t, http.StatusOK, status)

	var ids []string
	getJSON(t, ts, "/v1/sessions", &ids)
	assert.Equal(t, []string{"alice"}, ids)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/v1/sessions/alice", nil)
	require.NoError(t, err)
	delResp, err := ts.Client().Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	resp = getJSON(t, ts, "/v1/sessions/alice", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Post(ts.URL+"/v1/sessions/alice/events", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_CORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/v1/checklists", nil)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
