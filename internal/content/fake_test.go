package content

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"
)

var errStoreDown = errors.New("store unreachable")

type fakeGateway struct {
	mu sync.Mutex

	events, issues, projects, posts []Row
	bySlug                          map[string]Row
	byID                            map[string]Row
	members                         int64

	listErr      error
	countErr     error
	incrementErr error

	countCalls int
	byIDCalls  int
	increments map[string]int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		bySlug:     map[string]Row{},
		byID:       map[string]Row{},
		increments: map[string]int{},
	}
}

func (f *fakeGateway) addPost(r Row) {
	f.posts = append(f.posts, r)
	f.bySlug[r.String("slug")] = r
	f.byID[r.String("id")] = r
}

func (f *fakeGateway) ListEvents(context.Context) ([]Row, error)   { return f.events, f.listErr }
func (f *fakeGateway) ListIssues(context.Context) ([]Row, error)   { return f.issues, f.listErr }
func (f *fakeGateway) ListProjects(context.Context) ([]Row, error) { return f.projects, f.listErr }
func (f *fakeGateway) ListBlogPosts(context.Context) ([]Row, error) {
	return f.posts, f.listErr
}

func (f *fakeGateway) ListBlogPostsByIDs(_ context.Context, ids []string) ([]Row, error) {
	f.mu.Lock()
	f.byIDCalls++
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var rows []Row
	for _, p := range f.posts {
		for _, id := range ids {
			if p.String("id") == id {
				rows = append(rows, p)
			}
		}
	}
	return rows, nil
}

func (f *fakeGateway) GetBlogPostBySlug(_ context.Context, slug string) (Row, bool, error) {
	if f.listErr != nil {
		return nil, false, f.listErr
	}
	r, ok := f.bySlug[slug]
	return r, ok, nil
}

func (f *fakeGateway) CountMembers(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countCalls++
	return f.members, f.countErr
}

func (f *fakeGateway) IncrementBlogPostViews(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.increments[id]++
	return nil
}

type fakeStore struct {
	mu     sync.Mutex
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	putErr error
	puts   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = value
	s.ttls[key] = ttl
	return nil
}

type fakeMarkdown struct {
	body  string
	err   error
	calls int
}

func (m *fakeMarkdown) Fetch(context.Context, string) (string, error) {
	m.calls++
	return m.body, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postRow(id, slug, published string) Row {
	return Row{
		"id":                  id,
		"title":               "Post " + id,
		"slug":                slug,
		"excerpt":             "excerpt",
		"post_type":           "guide",
		"category":            "cli",
		"tags":                `["go","cli"]`,
		"author_name":         "Robin",
		"author_github":       nil,
		"difficulty_level":    nil,
		"estimated_read_time": int64(7),
		"published_at":        published,
		"updated_at":          nil,
		"views":               int64(10),
		"likes":               int64(2),
		"markdown_url":        "https://storage.example.org/" + slug + ".md",
		"series_title":        nil,
		"series_part":         nil,
		"series_total_parts":  nil,
		"external_links":      nil,
	}
}
