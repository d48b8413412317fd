package fetch_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/dsfetch/pkg/infra/fetch"
)

func TestFetchContent(t *testing.T) {
	content := []byte("mock")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(content)
	}))
	defer srv.Close()

	client := fetch.New()
	result, err := client.Fetch(context.Background(), srv.URL+"/mock.data")
	gt.NoError(t, err)
	defer result.Body.Close()

	gt.Number(t, result.ContentLength).Equal(int64(len(content)))
	gt.Value(t, result.SuggestedFilename).Equal("")

	body, err := io.ReadAll(result.Body)
	gt.NoError(t, err)
	gt.Value(t, body).Equal(content)
}

func TestFetchContentDisposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", "attachment; filename=mock.data")
		_, _ = w.Write([]byte("mock"))
	}))
	defer srv.Close()

	client := fetch.New()
	result, err := client.Fetch(context.Background(), srv.URL+"/download?id=42")
	gt.NoError(t, err)
	defer result.Body.Close()

	gt.Value(t, result.SuggestedFilename).Equal("mock.data")
}

func TestFetchUnknownLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Flushing before the body is complete forces chunked encoding,
		// so no Content-Length header is sent
		w.WriteHeader(http.StatusOK)
		flusher := w.(http.Flusher)
		flusher.Flush()
		_, _ = w.Write([]byte("mock"))
	}))
	defer srv.Close()

	client := fetch.New()
	result, err := client.Fetch(context.Background(), srv.URL+"/mock.data")
	gt.NoError(t, err)
	defer result.Body.Close()

	gt.Number(t, result.ContentLength).Less(int64(0))

	body, err := io.ReadAll(result.Body)
	gt.NoError(t, err)
	gt.Value(t, string(body)).Equal("mock")
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := fetch.New()
	_, err := client.Fetch(context.Background(), srv.URL+"/missing")
	gt.Error(t, err)
}

func TestFetchHeaders(t *testing.T) {
	var gotUA, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	client := fetch.New(
		fetch.WithUserAgent("dsfetch-test"),
		fetch.WithAuthToken("sekrit"),
	)
	result, err := client.Fetch(context.Background(), srv.URL+"/f")
	gt.NoError(t, err)
	_ = result.Body.Close()

	gt.Value(t, gotUA).Equal("dsfetch-test")
	gt.Value(t, gotAuth).Equal("Bearer sekrit")
}
