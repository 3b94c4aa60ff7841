package memory

import (
	"context"
	"fmt"

	"github.com/binetime/binetime/internal/domain/user"
)

type UserRepository struct {
	db *Database
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[userID]
	return u, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	email = user.NormalizeEmail(email)

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) GetDefault(_ context.Context) (user.User, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.IsDefault {
			return u, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	u.Email = user.NormalizeEmail(u.Email)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.users[u.ID]; exists {
		return user.User{}, fmt.Errorf("user %s already exists", u.ID)
	}
	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return user.User{}, fmt.Errorf("user email %s already exists", u.Email)
		}
	}
	r.db.users[u.ID] = u
	return u, nil
}
