package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"uninote-collector/internal/app/api"
	"uninote-collector/internal/app/model"
)

// MockRetriever is a mock implementation of the api.Retriever interface.
// Besides returning canned info, it can drop subtitle sidecar files into the
// request's video directory the way the real tool does.
type MockRetriever struct {
	mu sync.Mutex

	FetchFunc func(ctx context.Context, req api.FetchRequest) (*model.VideoInfo, error)

	defaultInfo *model.VideoInfo
	infos       map[string]*model.VideoInfo
	errors      map[string]error
	subtitles   map[string]mockSubtitle

	fetchedURLs []string
}

type mockSubtitle struct {
	suffix  string
	content string
}

// NewMockRetriever creates a MockRetriever that succeeds with empty info.
func NewMockRetriever() *MockRetriever {
	return &MockRetriever{
		infos:     make(map[string]*model.VideoInfo),
		errors:    make(map[string]error),
		subtitles: make(map[string]mockSubtitle),
	}
}

// WithDefaultInfo sets the info returned for any URL without a specific one.
func (m *MockRetriever) WithDefaultInfo(info *model.VideoInfo) *MockRetriever {
	m.defaultInfo = info
	return m
}

// WithInfo sets the info returned for a specific URL.
func (m *MockRetriever) WithInfo(url string, info *model.VideoInfo) *MockRetriever {
	m.infos[url] = info
	return m
}

// WithError makes Fetch fail for a specific URL.
func (m *MockRetriever) WithError(url string, err error) *MockRetriever {
	m.errors[url] = err
	return m
}

// WithSubtitle makes Fetch write a subtitle sidecar named
// <BaseName><suffix> (e.g. suffix ".en.vtt") for a specific URL.
func (m *MockRetriever) WithSubtitle(url, suffix, content string) *MockRetriever {
	m.subtitles[url] = mockSubtitle{suffix: suffix, content: content}
	return m
}

// Fetch implements the api.Retriever interface.
func (m *MockRetriever) Fetch(ctx context.Context, req api.FetchRequest) (*model.VideoInfo, error) {
	m.mu.Lock()
	m.fetchedURLs = append(m.fetchedURLs, req.URL)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, req)
	}

	if err, exists := m.errors[req.URL]; exists {
		return nil, err
	}

	if sub, exists := m.subtitles[req.URL]; exists {
		path := filepath.Join(req.VideoDir, req.BaseName+sub.suffix)
		if err := os.WriteFile(path, []byte(sub.content), 0644); err != nil {
			return nil, err
		}
	}

	if info, exists := m.infos[req.URL]; exists {
		return info, nil
	}
	return m.defaultInfo, nil
}

// Name implements the api.Retriever interface.
func (m *MockRetriever) Name() string {
	return "mock-retriever"
}

// FetchedURLs returns the URLs Fetch was called with, in order.
func (m *MockRetriever) FetchedURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	urls := make([]string, len(m.fetchedURLs))
	copy(urls, m.fetchedURLs)
	return urls
}

// GetCallCount returns the number of Fetch calls.
func (m *MockRetriever) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fetchedURLs)
}

var _ api.Retriever = (*MockRetriever)(nil)
