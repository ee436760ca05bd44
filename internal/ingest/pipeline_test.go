package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supportagent/internal/genai"
	"supportagent/internal/observability"
)

// stubStore fakes the Gemini file store. Upload captures the temp file;
// GetFile walks a scripted sequence of states.
type stubStore struct {
	uploadCalls int
	uploadPath  string
	uploadData  []byte
	uploadErr   error

	initialState string
	states       []string
	getCalls     int
}

func (s *stubStore) UploadFile(_ context.Context, path, mimeType string) (*genai.File, error) {
	s.uploadCalls++
	s.uploadPath = path
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s.uploadData = data
	state := s.initialState
	if state == "" {
		state = genai.FileStateProcessing
	}
	return &genai.File{Name: "files/test", URI: "https://files.example/test", State: state, MIMEType: mimeType}, nil
}

func (s *stubStore) GetFile(_ context.Context, name string) (*genai.File, error) {
	state := genai.FileStateProcessing
	if s.getCalls < len(s.states) {
		state = s.states[s.getCalls]
	} else if len(s.states) > 0 {
		state = s.states[len(s.states)-1]
	}
	s.getCalls++
	return &genai.File{Name: name, URI: "https://files.example/test", State: state}, nil
}

func newTestPipeline(store FileStore) *Pipeline {
	p := NewPipeline(observability.Nop(), store, PipelineConfig{
		FetchTimeout: 5 * time.Second,
		UserAgent:    "test-agent",
		PollInterval: 5 * time.Second,
		PollCeiling:  120 * time.Second,
	})
	p.sleep = func(time.Duration) {}
	return p
}

func TestIngestDirectPDF(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 direct body")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdfBytes)
	}))
	defer srv.Close()

	store := &stubStore{initialState: genai.FileStateActive}
	res, err := newTestPipeline(store).Ingest(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "files/test", res.FileName)
	assert.Equal(t, "https://files.example/test", res.FileURI)
	// Raw body uploaded untouched; no HTML unwrapping happened.
	assert.Equal(t, pdfBytes, store.uploadData)
	assert.Equal(t, 1, store.uploadCalls)
}

func TestIngestUnwrapsViewerPage(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 wrapped body")
	mux := http.NewServeMux()
	mux.HandleFunc("/Download.aspx", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><body><iframe id="mainFrame" src="/docs/manual.pdf"></iframe></body></html>`)
	})
	mux.HandleFunc("/docs/manual.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdfBytes)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := &stubStore{initialState: genai.FileStateActive}
	res, err := newTestPipeline(store).Ingest(context.Background(), srv.URL+"/Download.aspx")
	require.NoError(t, err)

	assert.Equal(t, pdfBytes, store.uploadData, "relative iframe src must resolve against the page URL")
	assert.Equal(t, "https://files.example/test", res.FileURI)
}

func TestIngestViewerPageWithoutFrame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer srv.Close()

	store := &stubStore{}
	_, err := newTestPipeline(store).Ingest(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, KindExtract, KindOf(err))
	assert.Contains(t, err.Error(), "could not find PDF URL")
	assert.Equal(t, 0, store.uploadCalls, "no upload after extraction failure")
}

func TestIngestFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestPipeline(&stubStore{}).Ingest(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, KindFetch, KindOf(err))
}

func TestIngestPollsUntilActive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	store := &stubStore{states: []string{genai.FileStateProcessing, genai.FileStateProcessing, genai.FileStateActive}}
	res, err := newTestPipeline(store).Ingest(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 3, store.getCalls)
	assert.Equal(t, "files/test", res.FileName)
}

func TestIngestPollCeilingBoundsChecks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	// Store that never leaves PROCESSING.
	store := &stubStore{}
	_, err := newTestPipeline(store).Ingest(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, KindProcessing, KindOf(err))
	assert.Contains(t, err.Error(), genai.FileStateProcessing)
	// 120s ceiling at 5s intervals: exactly 24 status checks.
	assert.Equal(t, 24, store.getCalls)
}

func TestIngestReportsTerminalFailureState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	store := &stubStore{states: []string{genai.FileStateFailed}}
	_, err := newTestPipeline(store).Ingest(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, KindProcessing, KindOf(err))
	assert.Contains(t, err.Error(), genai.FileStateFailed)
}

func TestIngestRemovesTempFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	t.Run("after success", func(t *testing.T) {
		store := &stubStore{initialState: genai.FileStateActive}
		_, err := newTestPipeline(store).Ingest(context.Background(), srv.URL)
		require.NoError(t, err)

		require.NotEmpty(t, store.uploadPath)
		_, statErr := os.Stat(store.uploadPath)
		assert.True(t, os.IsNotExist(statErr), "temp file must be removed on success")
	})

	t.Run("after upload failure", func(t *testing.T) {
		store := &stubStore{uploadErr: fmt.Errorf("store rejected upload")}
		_, err := newTestPipeline(store).Ingest(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, KindUpload, KindOf(err))

		require.NotEmpty(t, store.uploadPath)
		_, statErr := os.Stat(store.uploadPath)
		assert.True(t, os.IsNotExist(statErr), "temp file must be removed on failure")
	})
}
