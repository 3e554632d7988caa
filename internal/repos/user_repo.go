// Package repos provides typed per-entity accessors over the record store.
package repos

import (
	"finvault/internal/models"
	"finvault/internal/store"
)

// UserRepo accesses the users collection.
type UserRepo struct {
	col *store.Collection[models.User, *models.User]
}

// NewUserRepo creates a UserRepo bound to the given store.
func NewUserRepo(s *store.Store) *UserRepo {
	return &UserRepo{col: store.NewCollection[models.User, *models.User](s, "users")}
}

// Create inserts a new user, assigning its id and timestamps.
func (r *UserRepo) Create(user *models.User) error {
	return r.col.Insert(user)
}

// ByID returns the user with the given id, or false when absent.
func (r *UserRepo) ByID(id int64) (*models.User, bool) {
	return r.col.ByID(id)
}

// ByUsername returns the user with the given username, or false when absent.
func (r *UserRepo) ByUsername(username string) (*models.User, bool) {
	return r.col.FindOne(func(u *models.User) bool { return u.Username == username })
}

// ByEmail returns the user with the given email, or false when absent.
func (r *UserRepo) ByEmail(email string) (*models.User, bool) {
	return r.col.FindOne(func(u *models.User) bool { return u.Email == email })
}
