package handlers_test

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	appauth "github.com/jblavisse/scriptalium/internal/application/auth"
	"github.com/jblavisse/scriptalium/internal/application/project"
	apptext "github.com/jblavisse/scriptalium/internal/application/text"
	"github.com/jblavisse/scriptalium/internal/domain"
	domerrors "github.com/jblavisse/scriptalium/internal/domain/errors"
	infraauth "github.com/jblavisse/scriptalium/internal/infrastructure/auth"
	httprouter "github.com/jblavisse/scriptalium/internal/infrastructure/http"
	"github.com/jblavisse/scriptalium/internal/infrastructure/http/handlers"
	"github.com/jblavisse/scriptalium/internal/infrastructure/http/middleware"
	"github.com/jblavisse/scriptalium/internal/infrastructure/security"
)

type memUserRepo struct {
	mu    sync.Mutex
	users []*domain.User
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domerrors.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return domerrors.ErrEmailTaken
		}
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByID(_ context.Context, userID domain.UserID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == userID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memProjectRepo struct {
	mu       sync.Mutex
	projects map[domain.ProjectID]*domain.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: make(map[domain.ProjectID]*domain.Project)}
}

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) GetByID(_ context.Context, projectID domain.ProjectID) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) ListByOwner(_ context.Context, ownerID domain.UserID) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*domain.Project
	for _, p := range r.projects {
		if p.OwnerID != nil && *p.OwnerID == ownerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *memProjectRepo) Update(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, projectID domain.ProjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.projects, projectID)
	return nil
}

type memTextRepo struct {
	mu          sync.Mutex
	texts       []*domain.Text
	annotations []*domain.Annotation
}

func (r *memTextRepo) CreateText(_ context.Context, t *domain.Text) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.texts = append(r.texts, &cp)
	return nil
}

func (r *memTextRepo) GetText(_ context.Context, textID domain.TextID) (*domain.Text, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.texts {
		if t.ID == textID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTextRepo) CreateWithAnnotation(_ context.Context, t *domain.Text, a *domain.Annotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tc, ac := *t, *a
	r.texts = append(r.texts, &tc)
	r.annotations = append(r.annotations, &ac)
	return nil
}

func (r *memTextRepo) ListAnnotations(_ context.Context, textID domain.TextID) ([]*domain.Annotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*domain.Annotation
	for _, a := range r.annotations {
		if a.TextID == textID {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memTextRepo) counts() (texts, annotations int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.texts), len(r.annotations)
}

// testEnv wires the real router, use cases and token issuer over in-memory
// repositories.
type testEnv struct {
	handler  http.Handler
	users    *memUserRepo
	projects *memProjectRepo
	texts    *memTextRepo
	issuer   *infraauth.TokenIssuer
}

const (
	testAccessExpiry  = 300
	testRefreshExpiry = 86400
)

func newTestEnv() *testEnv {
	log := zerolog.Nop()
	users := &memUserRepo{}
	projects := newMemProjectRepo()
	texts := &memTextRepo{}
	issuer := infraauth.NewTokenIssuer([]byte("test-secret"))
	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})

	authHandler := handlers.NewAuthHandler(
		appauth.NewRegisterUser(users, hasher),
		appauth.NewLogin(users, hasher, issuer, testAccessExpiry, testRefreshExpiry),
		appauth.NewRefresh(issuer, testAccessExpiry),
		users, false, log)
	projectsHandler := handlers.NewProjectsHandler(
		project.NewCreate(projects),
		project.NewList(projects),
		project.NewGet(projects),
		project.NewUpdate(projects),
		project.NewDelete(projects),
		log)
	textsHandler := handlers.NewTextsHandler(
		apptext.NewCreateText(texts),
		apptext.NewAddAnnotation(texts),
		log)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:     authHandler,
		ProjectsHandler: projectsHandler,
		TextsHandler:    textsHandler,
		CSRFHandler:     handlers.NewCSRFHandler(false),
		CookieAuth:      middleware.NewCookieAuth(issuer),
		Log:             log,
	})
	return &testEnv{
		handler:  router,
		users:    users,
		projects: projects,
		texts:    texts,
		issuer:   issuer,
	}
}
