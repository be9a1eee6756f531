package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/shashiranjanraj/nightcap/internal/kernel"
	"github.com/shashiranjanraj/nightcap/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiClient drives the full HTTP stack with a cookie jar, the way the
// browser client does.
type apiClient struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	db := testdb.New(t)
	srv := httptest.NewServer(kernel.NewHandler(db, catalog.Default()))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &apiClient{t: t, srv: srv, client: &http.Client{Jar: jar}}
}

func (c *apiClient) doJSON(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader([]byte("{}"))
	}

	req, err := http.NewRequest(method, c.srv.URL+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (c *apiClient) doForm(path string, form url.Values) (int, map[string]interface{}) {
	c.t.Helper()

	resp, err := c.client.Post(c.srv.URL+path, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestFullAPIFlow(t *testing.T) {
	c := newAPIClient(t)

	// Register auto-logs-in via cookies.
	status, body := c.doJSON(http.MethodPost, "/register", map[string]interface{}{
		"email": "flow@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Registration successful", body["message"])
	assert.NotEmpty(t, body["token"])

	// Status reflects the fresh account.
	status, body = c.doJSON(http.MethodGet, "/get_user_status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["logged_in"])
	assert.Equal(t, "flow", body["username"])
	assert.Equal(t, false, body["metrics_set"])
	assert.Nil(t, body["current_session_id"])

	// Save body metrics.
	status, body = c.doJSON(http.MethodPost, "/set_user_metrics", map[string]interface{}{
		"age": 30, "height_cm": 180, "weight_kg": 70, "sex": "m",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Metrics saved", body["message"])

	// Create a tracking session; it becomes current.
	status, body = c.doJSON(http.MethodPost, "/create_session", map[string]interface{}{
		"name": "Friday",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Session created", body["message"])
	sessionID, _ := body["session_id"].(string)
	require.NotEmpty(t, sessionID)

	status, body = c.doJSON(http.MethodGet, "/get_user_status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, sessionID, body["current_session_id"])

	// Log a beer.
	status, body = c.doForm("/add_drink/"+sessionID, url.Values{
		"drink_type":    {"beer"},
		"custom_abv":    {"5.0"},
		"liquid_ounces": {"12"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Drink added", body["message"])
	drink := body["drink"].(map[string]interface{})
	assert.Equal(t, float64(118), drink["calories"])
	drinkID := drink["id"].(string)

	// Bump the count.
	status, body = c.doJSON(http.MethodPost, "/update_drink/"+sessionID+"/"+drinkID,
		map[string]interface{}{"action": "increment"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Drink count incremented", body["message"])
	assert.Equal(t, float64(2), body["count"])

	// Log a run.
	status, body = c.doJSON(http.MethodPost, "/add_exercise/"+sessionID, map[string]interface{}{
		"exercise_type": "running", "minutes": 30,
	})
	require.Equal(t, http.StatusOK, status)
	exercise := body["exercise"].(map[string]interface{})
	assert.Equal(t, float64(280), exercise["calories_burned"])

	// Dashboard ties it together.
	status, body = c.doJSON(http.MethodGet, "/get_dashboard_data/"+sessionID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Friday", body["session_name"])
	assert.Equal(t, float64(236), body["total_calories_consumed"])
	assert.Equal(t, float64(280), body["total_calories_burned"])
	assert.Equal(t, float64(-44), body["net_calories"])
	times := body["exercise_times"].(map[string]interface{})
	assert.Equal(t, float64(0), times["running"]) // over-burned, nothing left

	// Session list shows the net.
	status, body = c.doJSON(http.MethodGet, "/get_sessions", nil)
	require.Equal(t, http.StatusOK, status)
	sessions := body["sessions"].([]interface{})
	require.Len(t, sessions, 1)
	assert.Equal(t, float64(-44), body["grand_net_calories"])

	// Delete everything.
	status, body = c.doJSON(http.MethodDelete, "/delete_session/"+sessionID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Session and associated data deleted successfully", body["message"])

	status, body = c.doJSON(http.MethodGet, "/get_dashboard_data/"+sessionID, nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Session not found or unauthorized", body["error"])

	// Logout clears the identity.
	status, body = c.doJSON(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Logout successful", body["message"])

	status, body = c.doJSON(http.MethodGet, "/get_user_status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["logged_in"])
	assert.Nil(t, body["username"])
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	c := newAPIClient(t)

	status, body := c.doJSON(http.MethodGet, "/get_sessions", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Not logged in", body["error"])

	status, _ = c.doJSON(http.MethodPost, "/create_session", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRegisterDuplicateAndLogin(t *testing.T) {
	c := newAPIClient(t)

	status, _ := c.doJSON(http.MethodPost, "/register", map[string]interface{}{
		"email": "dup@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := c.doJSON(http.MethodPost, "/register", map[string]interface{}{
		"email": "dup@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "User already exists", body["error"])

	status, body = c.doJSON(http.MethodPost, "/login", map[string]interface{}{
		"email": "dup@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["error"])

	status, body = c.doJSON(http.MethodPost, "/login", map[string]interface{}{
		"email": "dup@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])
}

func TestAddDrinkBadInput(t *testing.T) {
	c := newAPIClient(t)

	_, body := c.doJSON(http.MethodPost, "/register", map[string]interface{}{
		"email": "bad@example.com", "password": "secret123",
	})
	require.NotEmpty(t, body["token"])

	status, created := c.doJSON(http.MethodPost, "/create_session", nil)
	require.Equal(t, http.StatusOK, status)
	sessionID := created["session_id"].(string)

	status, body = c.doForm("/add_drink/"+sessionID, url.Values{"drink_type": {"mead"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid drink type", body["error"])

	status, body = c.doForm("/add_drink/"+sessionID, url.Values{
		"drink_type": {"mixed_drink"}, "liquid_ounces": {"2.5"},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid number for shots count", body["error"])
}
