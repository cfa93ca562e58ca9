package api_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/utakatalp/football-statistics/internal/api"
	"github.com/utakatalp/football-statistics/internal/processor"
	"github.com/utakatalp/football-statistics/internal/store"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	table := store.NewTable()
	srv := httptest.NewServer(api.NewServer(processor.New(table, io.Discard), table).Router())
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(raw)
}

func TestPostMessages(t *testing.T) {
	srv := newServer(t)

	body := strings.Join([]string{
		`{"type":"RESULT","result":{"home_team":"A","away_team":"B","home_score":2,"away_score":1}}`,
		`{"type":"RESULT","result":{"home_team":"A"}}`,
		`{"type":"RESULT","result":{"home_team":"A","away_team":"C","home_score":0,"away_score":0}}`,
		`{"type":"GET_STATISTICS","get_statistics":{"teams":["A","Nobody"]}}`,
	}, "\n")

	resp, out := do(t, http.MethodPost, srv.URL+"/messages", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "1", resp.Header.Get("X-Rejected-Messages"))
	require.Equal(t, "A 1 3 2 1\nB 1 0 1 2\nA 2 4 2 1\nC 1 1 0 0\nA WD 1.50 2 4 2 1\n", out)

	resp, out = do(t, http.MethodGet, srv.URL+"/teams/A", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "A WD 1.50 2 4 2 1\n", out)

	resp, out = do(t, http.MethodGet, srv.URL+"/teams/C/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "C 1 1 0 0\n", out)

	resp, out = do(t, http.MethodGet, srv.URL+"/teams", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "A\nB\nC\n", out)
}

func TestGetUnknownTeam(t *testing.T) {
	srv := newServer(t)

	resp, _ := do(t, http.MethodGet, srv.URL+"/teams/Nobody", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/teams/Nobody/summary", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newServer(t)

	resp, _ := do(t, http.MethodGet, srv.URL+"/messages", "")
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestConcurrentResults(t *testing.T) {
	srv := newServer(t)

	const posts = 20

	var wg sync.WaitGroup
	for i := 0; i < posts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"type":"RESULT","result":{"home_team":"A","away_team":"T%d","home_score":1,"away_score":0}}`, i)
			resp, err := http.Post(srv.URL+"/messages", "application/x-ndjson", strings.NewReader(body))
			if err == nil {
				_ = resp.Body.Close()
			}
		}(i)
	}
	wg.Wait()

	_, out := do(t, http.MethodGet, srv.URL+"/teams/A/summary", "")
	require.Equal(t, fmt.Sprintf("A %d %d %d 0\n", posts, 3*posts, posts), out)
}
