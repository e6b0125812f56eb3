package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reboot-engine/internal/config"
	"reboot-engine/internal/fetch"
)

func TestDecodeBareArray(t *testing.T) {
	body := []byte(`[
		{"title":"未経験エンジニア","link":"https://x/1","location":"東京都"},
		{"title":"営業アシスタント","url":"https://x/2"}
	]`)

	jobs, err := Decode(body)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "未経験エンジニア", jobs[0].Title)
	assert.Equal(t, "https://x/1", jobs[0].Link)
	assert.Equal(t, "https://x/2", jobs[1].URL)
}

func TestDecodeWrapped(t *testing.T) {
	body := []byte(`{"jobs":[{"title":"t","link":"https://x/1","site_name":"Infra"}]}`)

	jobs, err := Decode(body)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Infra", jobs[0].SiteName)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"jobs":[{"title":"t","link":"https://x/1"}]}`))
	}))
	defer srv.Close()

	f := New(config.Feed{Name: "infra", URL: srv.URL}, fetch.NewHostLimiter(100, 10))
	assert.Equal(t, "infra", f.Name())

	batch, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "infra", batch.Source)
	require.Len(t, batch.Jobs, 1)
	assert.Equal(t, "t", batch.Jobs[0].Title)
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := New(config.Feed{Name: "infra", URL: srv.URL}, fetch.NewHostLimiter(100, 10))
	_, err := f.Fetch(context.Background())
	assert.Error(t, err)
}

func TestDecodeEmptyShapes(t *testing.T) {
	jobs, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, jobs)

	jobs, err = Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
