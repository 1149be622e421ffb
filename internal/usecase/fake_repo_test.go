package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/utils"
)

// fakeUserRepo is an in-memory stand-in for the Mongo repository. It enforces
// the same unique name-pair constraint the real collection index does.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.FirstName == user.FirstName && existing.LastName == user.LastName {
			return nil, repository.ErrConflict
		}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	user.HashedPass = hashed
	user.IsActive = false
	user.CreatedAt = time.Now()
	user.LastLogin = nil

	stored := *user
	f.users[user.ID] = &stored

	return user, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByName(ctx context.Context, firstName, lastName string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.FirstName == firstName && user.LastName == lastName {
			copied := *user
			return &copied, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) ApplyFields(ctx context.Context, user *entity.User, fields map[string]any) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.users[user.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	for field, value := range fields {
		switch field {
		case "is_active":
			stored.IsActive = value.(bool)
		case "last_login":
			stamp := value.(time.Time)
			stored.LastLogin = &stamp
		}
	}

	copied := *stored
	return &copied, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User, update *entity.UserUpdate) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.users[user.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	firstName := stored.FirstName
	lastName := stored.LastName
	if update.FirstName != nil {
		firstName = *update.FirstName
	}
	if update.LastName != nil {
		lastName = *update.LastName
	}

	for id, other := range f.users {
		if id != user.ID && other.FirstName == firstName && other.LastName == lastName {
			return nil, repository.ErrConflict
		}
	}

	stored.FirstName = firstName
	stored.LastName = lastName
	if update.Role != nil {
		stored.Role = entity.UserRole(*update.Role)
	}
	if update.Password != nil {
		hashed, err := utils.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		stored.HashedPass = hashed
	}

	copied := *stored
	return &copied, nil
}
