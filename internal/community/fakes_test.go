package community

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/middleware"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

// The fakes mirror the real gateways' contracts, including the per-document
// atomicity of the conditional updates: every check-and-mutate runs under one
// lock, the way a single MongoDB update is applied.

type fakePaths struct {
	mu    sync.Mutex
	paths map[string]*models.LearningPath
}

func newFakePaths(paths ...*models.LearningPath) *fakePaths {
	f := &fakePaths{paths: map[string]*models.LearningPath{}}
	for _, p := range paths {
		f.paths[p.ID] = p
	}
	return f
}

func (f *fakePaths) List(context.Context) ([]models.LearningPath, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.LearningPath{}
	for _, p := range f.paths {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePaths) GetByID(_ context.Context, id string) (*models.LearningPath, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.paths[id]
	if !ok {
		return nil, apperror.NotFound("learning path")
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaths) Enroll(_ context.Context, id string) (*models.LearningPath, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.paths[id]
	if !ok {
		return nil, apperror.NotFound("learning path")
	}
	p.Enrolled++
	cp := *p
	return &cp, nil
}

type fakeBuilds struct {
	mu     sync.Mutex
	builds map[string]*models.Build
}

func newFakeBuilds(builds ...*models.Build) *fakeBuilds {
	f := &fakeBuilds{builds: map[string]*models.Build{}}
	for _, b := range builds {
		f.builds[b.ID] = b
	}
	return f
}

func (f *fakeBuilds) List(context.Context, int, int) ([]models.Build, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Build{}
	for _, b := range f.builds {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBuilds) Insert(_ context.Context, b *models.Build) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *b
	f.builds[b.ID] = &cp
	return nil
}

func (f *fakeBuilds) Like(_ context.Context, id string) (*models.Build, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.builds[id]
	if !ok {
		return nil, apperror.NotFound("build")
	}
	b.Likes++
	cp := *b
	return &cp, nil
}

type fakeUsers struct {
	mu           sync.Mutex
	buildsShared map[string]int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{buildsShared: map[string]int{}}
}

func (f *fakeUsers) IncrementBuildsShared(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buildsShared[id]++
	return nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events map[string]*models.Event
}

func newFakeEvents(events ...*models.Event) *fakeEvents {
	f := &fakeEvents{events: map[string]*models.Event{}}
	for _, e := range events {
		f.events[e.ID] = e
	}
	return f
}

func (f *fakeEvents) List(context.Context) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Event{}
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEvents) Register(_ context.Context, eventID, userID string) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[eventID]
	if !ok {
		return nil, apperror.NotFound("event")
	}
	for _, id := range e.RegisteredUsers {
		if id == userID {
			return nil, apperror.Conflict("already registered")
		}
	}
	if e.Attendees >= e.MaxAttendees {
		return nil, apperror.Conflict("event is full")
	}
	e.Attendees++
	e.RegisteredUsers = append(e.RegisteredUsers, userID)
	cp := *e
	return &cp, nil
}

func (f *fakeEvents) get(id string) models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.events[id]
}

type fakeForum struct {
	mu      sync.Mutex
	topics  map[string]*models.ForumTopic
	replies []models.ForumReply
}

func newFakeForum(topics ...*models.ForumTopic) *fakeForum {
	f := &fakeForum{topics: map[string]*models.ForumTopic{}}
	for _, t := range topics {
		f.topics[t.ID] = t
	}
	return f
}

func (f *fakeForum) ListTopics(_ context.Context, category string, limit, offset int) ([]models.ForumTopic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ForumTopic{}
	for _, t := range f.topics {
		if category == "" || t.Category == category {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeForum) InsertTopic(_ context.Context, t *models.ForumTopic) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *t
	f.topics[t.ID] = &cp
	return nil
}

func (f *fakeForum) AddReply(_ context.Context, reply *models.ForumReply) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.topics[reply.TopicID]
	if !ok {
		return apperror.NotFound("topic")
	}
	t.Replies++
	t.LastActivity = reply.CreatedAt
	f.replies = append(f.replies, *reply)
	return nil
}

func (f *fakeForum) ListReplies(_ context.Context, topicID string) ([]models.ForumReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ForumReply{}
	for _, r := range f.replies {
		if r.TopicID == topicID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeForum) topic(id string) models.ForumTopic {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.topics[id]
}

type fakeImages struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeImages() *fakeImages {
	return &fakeImages{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeImages) Upload(_ context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeImages) Download(_ context.Context, key string) ([]byte, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, "", apperror.NotFound("image")
	}
	return data, f.types[key], nil
}

// stubResolver authenticates every request as a fixed user.
type stubResolver struct {
	user *models.User
}

func (s stubResolver) ResolveCaller(*http.Request) (*models.User, error) {
	if s.user == nil {
		return nil, apperror.Auth(apperror.ErrUnauthenticated, "not authenticated")
	}
	return s.user, nil
}

type testEnv struct {
	paths  *fakePaths
	builds *fakeBuilds
	users  *fakeUsers
	events *fakeEvents
	forum  *fakeForum
	images *fakeImages
}

func newTestEnv() *testEnv {
	return &testEnv{
		paths:  newFakePaths(),
		builds: newFakeBuilds(),
		users:  newFakeUsers(),
		events: newFakeEvents(),
		forum:  newFakeForum(),
		images: newFakeImages(),
	}
}

// router mounts the community routes the way cmd/server does, authenticated
// as the given user.
func (e *testEnv) router(as *models.User) *chi.Mux {
	h := NewHandler(e.paths, e.builds, e.users, e.events, e.forum, e.images)
	requireAuth := middleware.RequireAuth(stubResolver{user: as})

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/learning-paths", func(r chi.Router) {
			r.Get("/", h.ListPaths)
			r.Get("/{id}", h.GetPath)
			r.With(requireAuth).Post("/{id}/enroll", h.EnrollPath)
		})
		r.Route("/builds", func(r chi.Router) {
			r.Get("/", h.ListBuilds)
			r.Get("/images/{key}", h.GetBuildImage)
			r.With(requireAuth).Post("/", h.CreateBuild)
			r.With(requireAuth).Post("/images", h.UploadBuildImage)
			r.With(requireAuth).Post("/{id}/like", h.LikeBuild)
		})
		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.With(requireAuth).Post("/{id}/register", h.RegisterEvent)
		})
		r.Route("/forum/topics", func(r chi.Router) {
			r.Get("/", h.ListTopics)
			r.Get("/{id}/replies", h.ListReplies)
			r.With(requireAuth).Post("/", h.CreateTopic)
			r.With(requireAuth).Post("/{id}/reply", h.ReplyTopic)
		})
	})
	return r
}

func testUser(id, name string) *models.User {
	return &models.User{ID: id, Name: name, Email: id + "@example.com", Joined: time.Now()}
}
