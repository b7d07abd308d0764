package repository

import (
	"context"
	"strings"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/models"
)

const usersKey = "users/users.json"

// UserRepository stores API users in the same one-document-per-collection
// layout. It emits no domain events: auth activity is not bus traffic.
type UserRepository struct {
	doc document[models.User]
}

func NewUserRepository(store blobstore.Store) *UserRepository {
	return &UserRepository{
		doc: document[models.User]{
			store: store,
			key:   usersKey,
			name:  "users",
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, in models.User) (*models.User, error) {
	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.PasswordHash == "" {
		missing = append(missing, "password")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation("missing required fields: " + strings.Join(missing, ", "))
	}

	users, err := r.doc.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == in.Username {
			return nil, httperr.Conflict("username already exists")
		}
		if users[i].Email == in.Email {
			return nil, httperr.Conflict("email already registered")
		}
	}

	if in.ID == "" {
		in.ID = newID("user")
	}
	if in.Role == "" {
		in.Role = "employee"
	}
	in.IsActive = true
	in.CreatedAt = timestamp()

	users = append(users, in)
	if err := r.doc.save(ctx, users); err != nil {
		return nil, err
	}

	return &in, nil
}

// FindByUsername returns the active user with the given username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.doc.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username && users[i].IsActive {
			return &users[i], nil
		}
	}

	return nil, httperr.RecordNotFound("user not found")
}

// RecordLogin stamps lastLogin. Best effort: a failed stamp does not fail
// the login.
func (r *UserRepository) RecordLogin(ctx context.Context, id string) error {
	users, err := r.doc.loadExisting(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == id {
			users[i].LastLogin = timestamp()
			return r.doc.save(ctx, users)
		}
	}

	return httperr.RecordNotFound("user not found")
}
