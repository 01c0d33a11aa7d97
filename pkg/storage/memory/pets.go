package memory

import (
	"context"
	"petregistry/pkg/domain"
	"slices"

	"github.com/google/uuid"
)

func copyPet(p domain.Pet) *domain.Pet {
	p.Owners = slices.Clone(p.Owners)

	return &p
}

// StorePet inserts a new pet. Only the pet type reference is kept.
func (m *Memory) StorePet(_ context.Context, pet domain.Pet) (*domain.Pet, error) {
	var out *domain.Pet
	err := m.write(func(d *data) error {
		pet.ID = domain.PetID(uuid.New())
		pet.PetType = nil
		pet.Owners = slices.Clone(pet.Owners)
		pet.CreatedAt = now()

		d.pets[pet.ID] = pet
		d.petOrder = append(d.petOrder, pet.ID)
		out = copyPet(pet)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (m *Memory) PetByID(_ context.Context, ID domain.PetID) (*domain.Pet, error) {
	var out *domain.Pet
	err := m.read(func(d *data) {
		if p, ok := d.pets[ID]; ok {
			out = copyPet(p)
		}
	})

	return out, err
}

func (m *Memory) PetsByOwner(_ context.Context, userID domain.UserID) ([]domain.Pet, error) {
	var out []domain.Pet
	err := m.read(func(d *data) {
		for _, id := range d.petOrder {
			p := d.pets[id]
			if slices.Contains(p.Owners, userID) {
				out = append(out, *copyPet(p))
			}
		}
	})

	return out, err
}
