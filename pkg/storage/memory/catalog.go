package memory

import (
	"context"
	"fmt"
	"petregistry/pkg/domain"
	"petregistry/pkg/storage"

	"github.com/google/uuid"
)

func (m *Memory) StorePetProperty(_ context.Context, property domain.PetProperty) (*domain.PetProperty, error) {
	var out domain.PetProperty
	err := m.write(func(d *data) error {
		if _, exists := d.propertiesByName[property.Name]; exists {
			return storage.ErrDuplicate
		}

		property.ID = domain.PetPropertyID(uuid.New())
		property.CreatedAt = now()
		d.properties[property.ID] = property
		d.propertiesByName[property.Name] = property.ID
		out = property

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (m *Memory) PetPropertyByID(_ context.Context, ID domain.PetPropertyID) (*domain.PetProperty, error) {
	var out *domain.PetProperty
	err := m.read(func(d *data) {
		if p, ok := d.properties[ID]; ok {
			out = &p
		}
	})

	return out, err
}

func (m *Memory) PetPropertyByName(_ context.Context, name string) (*domain.PetProperty, error) {
	var out *domain.PetProperty
	err := m.read(func(d *data) {
		if id, ok := d.propertiesByName[name]; ok {
			p := d.properties[id]
			out = &p
		}
	})

	return out, err
}

// StorePetType inserts a pet type keeping only its property references.
func (m *Memory) StorePetType(_ context.Context, petType domain.PetType) (*domain.PetType, error) {
	var out *domain.PetType
	err := m.write(func(d *data) error {
		if _, exists := d.petTypesByName[petType.Name]; exists {
			return storage.ErrDuplicate
		}

		rec := petTypeRecord{
			ID:          domain.PetTypeID(uuid.New()),
			Name:        petType.Name,
			PropertyIDs: petType.PropertyIDs(),
			CreatedAt:   now(),
		}
		d.petTypes[rec.ID] = rec
		d.petTypesByName[rec.Name] = rec.ID

		var err error
		out, err = d.resolvePetType(rec)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (m *Memory) PetTypeByID(_ context.Context, ID domain.PetTypeID) (*domain.PetType, error) {
	var (
		out *domain.PetType
		err error
	)
	if rerr := m.read(func(d *data) {
		if rec, ok := d.petTypes[ID]; ok {
			out, err = d.resolvePetType(rec)
		}
	}); rerr != nil {
		return nil, rerr
	}

	return out, err
}

func (m *Memory) PetTypeByName(_ context.Context, name string) (*domain.PetType, error) {
	var (
		out *domain.PetType
		err error
	)
	if rerr := m.read(func(d *data) {
		if id, ok := d.petTypesByName[name]; ok {
			out, err = d.resolvePetType(d.petTypes[id])
		}
	}); rerr != nil {
		return nil, rerr
	}

	return out, err
}

func (d *data) resolvePetType(rec petTypeRecord) (*domain.PetType, error) {
	props := make([]domain.PetProperty, 0, len(rec.PropertyIDs))
	for _, id := range rec.PropertyIDs {
		p, ok := d.properties[id]
		if !ok {
			return nil, fmt.Errorf("pet type %s references missing property %s", rec.ID, id)
		}
		props = append(props, p)
	}

	return &domain.PetType{
		ID:         rec.ID,
		Name:       rec.Name,
		Properties: props,
		CreatedAt:  rec.CreatedAt,
	}, nil
}
