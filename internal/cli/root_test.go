package cli_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oscli/internal/cli"
	"github.com/dmitrymomot/oscli/internal/search"
)

// execute runs the root command against args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// stubCluster serves a minimal cat-indices endpoint plus one index with
// three documents, and points OPENSEARCH_URL at itself.
func stubCluster(t *testing.T) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/_cat/indices":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"health":"green","status":"open","index":"orders","docs.count":"3","store.size":"2048"},
				{"health":"yellow","status":"open","index":"customers","docs.count":"7","store.size":"4096"}
			]`))
		case r.Method == http.MethodHead && r.URL.Path == "/orders":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/orders/_search":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"hits": {
					"total": {"value": 3},
					"hits": [
						{"_id": "o-1", "_source": {"sku": "A", "embedding": [0.1, 0.2]}},
						{"_id": "o-2", "_source": {"sku": "B", "embedding": [0.3, 0.4]}}
					]
				}
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("OPENSEARCH_URL", srv.URL)
	t.Setenv("OPENSEARCH_HOST", "")
	t.Setenv("OPENSEARCH_PORT", "")
	t.Setenv("OPENSEARCH_USERNAME", "")
	t.Setenv("OPENSEARCH_PASSWORD", "")
	t.Setenv("OPENSEARCH_INSECURE_TLS", "")
}

func TestRoot_List(t *testing.T) {
	stubCluster(t)

	out, err := execute(t, "--list")

	require.NoError(t, err)
	assert.Contains(t, out, "orders")
	assert.Contains(t, out, "customers")
	assert.Contains(t, out, "2 indices total")
}

func TestRoot_SampleDocuments(t *testing.T) {
	stubCluster(t)

	out, err := execute(t, "orders", "--limit", "2")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "_id:"))
	assert.Contains(t, out, "o-1")
	assert.Contains(t, out, "sku")
	assert.Contains(t, out, "embeddings hidden")
	assert.NotContains(t, out, `"embedding"`)
}

func TestRoot_SampleDocuments_ShowEmbedding(t *testing.T) {
	stubCluster(t)

	out, err := execute(t, "orders", "--limit", "2", "--show-embedding")

	require.NoError(t, err)
	assert.Contains(t, out, `"embedding"`)
	assert.NotContains(t, out, "embeddings hidden")
}

func TestRoot_IndexNotFound(t *testing.T) {
	stubCluster(t)

	_, err := execute(t, "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, search.ErrIndexNotFound))
	assert.Contains(t, err.Error(), "nope")
	assert.Contains(t, err.Error(), "--list")
}

func TestRoot_ClusterUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	t.Setenv("OPENSEARCH_URL", url)

	_, err := execute(t, "--list")

	require.Error(t, err)
	assert.True(t, errors.Is(err, search.ErrConnectionFailed))
}

func TestRoot_ListAndIndexAreExclusive(t *testing.T) {
	stubCluster(t)

	_, err := execute(t, "orders", "--list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--list")
}

func TestRoot_NoArgsPrintsHelp(t *testing.T) {
	stubCluster(t)

	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRoot_LimitMustBePositive(t *testing.T) {
	stubCluster(t)

	_, err := execute(t, "orders", "--limit", "0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--limit")
}
