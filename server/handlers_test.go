package server

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/dailymenu/pkg/planner"
)

func getBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestIndexHandler(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{
		State:       planner.StateIdle,
		History:     []string{"menu-1", "menu-2"},
		Preferences: "No broccoli, Low spice",
	})
	ts := testServer(t, testConfigMock(true), p)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	body := getBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, body, "Hungry? Let's plan the day!")
	assert.Contains(t, body, "tracking last 2 menus")
	assert.Contains(t, body, "Following 2 preferences")
	assert.Contains(t, body, "Weekend Mode Active")
	assert.Contains(t, body, "Forget History")
}

func TestIndexHandler_FreshStart(t *testing.T) {
	ts := testServer(t, testConfigMock(false), testPlannerMock(planner.Snapshot{State: planner.StateIdle}))

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	body := getBody(t, resp)

	assert.Contains(t, body, "Memory: fresh start.")
	assert.NotContains(t, body, "Following")
	assert.NotContains(t, body, "Forget History")
}

func TestIndexHandler_WithMenu(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{
		State: planner.StateDisplaying,
		Menu:  "Breakfast: Poha, Lunch: Dal Tadka",
	})
	ts := testServer(t, testConfigMock(false), p)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	body := getBody(t, resp)

	assert.Contains(t, body, "Breakfast: Poha, Lunch: Dal Tadka")
	assert.Contains(t, body, "Regenerate All")
	assert.Contains(t, body, "Talk Back to the Chef")
}

func TestGenerateHandler(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{State: planner.StateDisplaying, Menu: "fresh menu"})
	ts := testServer(t, testConfigMock(true), p)

	resp, err := http.Post(ts.URL+"/generate", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	body := getBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, body, `id="session"`, "returns the session partial")
	assert.Contains(t, body, "fresh menu")

	require.Len(t, p.GenerateCalls(), 1)
	assert.True(t, p.GenerateCalls()[0].Weekend, "weekend mode passed through")
}

func TestUpdateHandler(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{State: planner.StateDisplaying, Menu: "revised menu"})
	ts := testServer(t, testConfigMock(false), p)

	resp, err := http.PostForm(ts.URL+"/update", url.Values{"feedback": {"I hate broccoli"}})
	require.NoError(t, err)
	body := getBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "revised menu")

	require.Len(t, p.SetFeedbackCalls(), 1)
	assert.Equal(t, "I hate broccoli", p.SetFeedbackCalls()[0].Text)
	require.Len(t, p.UpdateCalls(), 1)
	assert.Equal(t, "I hate broccoli", p.UpdateCalls()[0].Feedback)
	assert.False(t, p.UpdateCalls()[0].Weekend)
}

func TestUpdateHandler_Notification(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{
		State:        planner.StateDisplaying,
		Menu:         "revised menu",
		Notification: "Learned new preference: No broccoli",
	})
	ts := testServer(t, testConfigMock(false), p)

	resp, err := http.PostForm(ts.URL+"/update", url.Values{"feedback": {"I hate broccoli"}})
	require.NoError(t, err)
	body := getBody(t, resp)
	assert.Contains(t, body, "Learned new preference: No broccoli")
}

func TestTranscriptHandler(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{State: planner.StateDisplaying, Menu: "menu"})
	ts := testServer(t, testConfigMock(false), p)

	resp, err := http.PostForm(ts.URL+"/transcript", url.Values{"text": {"  less spicy  "}})
	require.NoError(t, err)
	getBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, p.AppendTranscriptCalls(), 1)
	assert.Equal(t, "less spicy", p.AppendTranscriptCalls()[0].Text, "transcript trimmed")

	// blank transcript is dropped
	resp, err = http.PostForm(ts.URL+"/transcript", url.Values{"text": {"   "}})
	require.NoError(t, err)
	getBody(t, resp)
	assert.Len(t, p.AppendTranscriptCalls(), 1)
}

func TestClearHandler(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{State: planner.StateIdle})
	ts := testServer(t, testConfigMock(false), p)

	resp, err := http.Post(ts.URL+"/clear", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	body := getBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Memory: fresh start.")
	assert.Len(t, p.ClearCalls(), 1)
}

func TestSettingsHandler(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{Preferences: "No broccoli, Low spice"})
	ts := testServer(t, testConfigMock(true), p)

	resp, err := http.Get(ts.URL + "/settings")
	require.NoError(t, err)
	body := getBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, body, "No broccoli, Low spice")
	assert.Contains(t, body, "checked", "weekend checkbox reflects the session setting")
}

func TestSaveSettingsHandler(t *testing.T) {
	p := testPlannerMock(planner.Snapshot{})
	ts := testServer(t, testConfigMock(false), p)

	t.Run("htmx request", func(t *testing.T) {
		form := url.Values{"preferences": {"  No broccoli  "}, "weekend": {"on"}}
		req, err := http.NewRequest(http.MethodPost, ts.URL+"/settings", strings.NewReader(form.Encode()))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("HX-Request", "true")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		body := getBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Saved")

		require.Len(t, p.SetPreferencesCalls(), 1)
		assert.Equal(t, "  No broccoli  ", p.SetPreferencesCalls()[0].Text, "preferences saved verbatim, no trimming")
	})

	t.Run("plain form post redirects", func(t *testing.T) {
		client := &http.Client{CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		}}
		resp, err := client.PostForm(ts.URL+"/settings", url.Values{"preferences": {"x"}})
		require.NoError(t, err)
		getBody(t, resp)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/settings", resp.Header.Get("Location"))
	})
}

func TestSessionData_PrefCount(t *testing.T) {
	tests := []struct {
		name        string
		preferences string
		want        int
	}{
		{"empty", "", 0},
		{"single", "No broccoli", 1},
		{"multiple", "No broccoli, Low spice, More paneer", 3},
		{"empty tokens skipped", "No broccoli, , ,Low spice", 2},
		{"whitespace only", "  ,  ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlannerMock(planner.Snapshot{Preferences: tt.preferences})
			srv, err := New(testConfigMock(false), p, "test", false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, srv.sessionData().PrefCount)
		})
	}
}

func TestSessionData_Busy(t *testing.T) {
	for _, state := range []planner.State{planner.StateGenerating, planner.StateUpdating} {
		p := testPlannerMock(planner.Snapshot{State: state})
		srv, err := New(testConfigMock(false), p, "test", false)
		require.NoError(t, err)
		assert.True(t, srv.sessionData().Busy, "state %s is busy", state)
	}

	p := testPlannerMock(planner.Snapshot{State: planner.StateDisplaying})
	srv, err := New(testConfigMock(false), p, "test", false)
	require.NoError(t, err)
	assert.False(t, srv.sessionData().Busy)
}
