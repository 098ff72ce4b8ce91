package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MounTainVSCO/oceans-api/internal/domain"
	"github.com/MounTainVSCO/oceans-api/internal/domain/entities"
)

// In-memory repository fakes. They clone on the way in and out so service
// code cannot mutate stored state except through Create/Update, mirroring a
// real store.

type memoryUserRepo struct {
	mutex sync.Mutex
	users map[uuid.UUID]*entities.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func cloneUser(u *entities.User) *entities.User {
	copied := *u
	return &copied
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	userEntity := user.GetUser()
	for _, existing := range r.users {
		if existing.Email == userEntity.Email {
			return nil, &domain.ConflictError{Field: "email"}
		}
	}

	r.users[userEntity.Id] = cloneUser(userEntity)
	return cloneUser(userEntity), nil
}

func (r *memoryUserRepo) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, exists := r.users[id]
	if !exists {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, user := range r.users {
		if user.Email == entities.NormalizeEmail(email) {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	userEntity := user.GetUser()
	for _, existing := range r.users {
		if existing.Id != userEntity.Id && existing.Email == userEntity.Email {
			return nil, &domain.ConflictError{Field: "email"}
		}
	}

	r.users[userEntity.Id] = cloneUser(userEntity)
	return cloneUser(userEntity), nil
}

func (r *memoryUserRepo) Count(ctx context.Context) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return int64(len(r.users)), nil
}

type memorySiteRepo struct {
	mutex sync.Mutex
	sites map[uuid.UUID]*entities.Site
}

func newMemorySiteRepo() *memorySiteRepo {
	return &memorySiteRepo{sites: make(map[uuid.UUID]*entities.Site)}
}

func cloneSite(s *entities.Site) *entities.Site {
	copied := *s
	return &copied
}

func (r *memorySiteRepo) Create(ctx context.Context, site *entities.ValidatedSite) (*entities.Site, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	siteEntity := site.GetSite()
	for _, existing := range r.sites {
		if existing.UserId == siteEntity.UserId && existing.Slug == siteEntity.Slug {
			return nil, &domain.ConflictError{Field: "slug"}
		}
	}

	r.sites[siteEntity.Id] = cloneSite(siteEntity)
	return cloneSite(siteEntity), nil
}

func (r *memorySiteRepo) FindById(ctx context.Context, id uuid.UUID) (*entities.Site, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	site, exists := r.sites[id]
	if !exists {
		return nil, nil
	}
	return cloneSite(site), nil
}

func (r *memorySiteRepo) FindByOwnerAndSlug(ctx context.Context, ownerId uuid.UUID, slug string) (*entities.Site, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, site := range r.sites {
		if site.UserId == ownerId && site.Slug == slug {
			return cloneSite(site), nil
		}
	}
	return nil, nil
}

func (r *memorySiteRepo) ListByOwner(ctx context.Context, ownerId uuid.UUID) ([]*entities.Site, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var sites []*entities.Site
	for _, site := range r.sites {
		if site.UserId == ownerId {
			sites = append(sites, cloneSite(site))
		}
	}
	return sites, nil
}

func (r *memorySiteRepo) CountByOwner(ctx context.Context, ownerId uuid.UUID) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var count int64
	for _, site := range r.sites {
		if site.UserId == ownerId {
			count++
		}
	}
	return count, nil
}

func (r *memorySiteRepo) Update(ctx context.Context, site *entities.ValidatedSite) (*entities.Site, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	siteEntity := site.GetSite()
	for _, existing := range r.sites {
		if existing.Id != siteEntity.Id && existing.UserId == siteEntity.UserId && existing.Slug == siteEntity.Slug {
			return nil, &domain.ConflictError{Field: "slug"}
		}
	}

	r.sites[siteEntity.Id] = cloneSite(siteEntity)
	return cloneSite(siteEntity), nil
}

func (r *memorySiteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.sites, id)
	return nil
}
