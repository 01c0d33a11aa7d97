package memory

import (
	"context"
	"petregistry/pkg/domain"
	"petregistry/pkg/storage"
	"slices"

	"github.com/google/uuid"
)

func copyUser(u domain.User) *domain.User {
	u.Pets = slices.Clone(u.Pets)

	return &u
}

// StoreUser inserts a new user. The email index is checked and updated under
// the same lock, so two concurrent registrations cannot both succeed.
func (m *Memory) StoreUser(_ context.Context, user domain.User) (*domain.User, error) {
	var out *domain.User
	err := m.write(func(d *data) error {
		if _, exists := d.usersByEmail[user.Email]; exists {
			return storage.ErrDuplicate
		}

		user.ID = domain.UserID(uuid.New())
		user.Pets = slices.Clone(user.Pets)
		user.Version = 1
		user.CreatedAt = now()

		d.users[user.ID] = user
		d.usersByEmail[user.Email] = user.ID
		out = copyUser(user)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (m *Memory) UserByID(_ context.Context, ID domain.UserID) (*domain.User, error) {
	var out *domain.User
	err := m.read(func(d *data) {
		if u, ok := d.users[ID]; ok {
			out = copyUser(u)
		}
	})

	return out, err
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	var out *domain.User
	err := m.read(func(d *data) {
		if id, ok := d.usersByEmail[email]; ok {
			out = copyUser(d.users[id])
		}
	})

	return out, err
}

// AppendUserPet appends petID to the user's pet list and bumps its version.
func (m *Memory) AppendUserPet(_ context.Context, userID domain.UserID, petID domain.PetID) (*domain.User, error) {
	var out *domain.User
	err := m.write(func(d *data) error {
		u, ok := d.users[userID]
		if !ok {
			return nil
		}

		u.Pets = append(slices.Clone(u.Pets), petID)
		u.Version++
		d.users[userID] = u
		out = copyUser(u)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
