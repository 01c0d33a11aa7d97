package registry

import (
	"context"
	"errors"
	"petregistry/internal/validation"
	"petregistry/pkg/domain"
	"petregistry/pkg/serrors"
	"petregistry/pkg/storage"
)

const (
	msgPetTypeExists      = "This kind of pet already exists."
	msgPetTypeLookup      = "Pet type not found"
	msgPetTypeNotSaved    = "I couldn't save this pet type in database!"
	msgPropNotFound       = "Could not find prop with this id."
	msgPetPropertyExists  = "This kind of pet property already exists."
	msgPetPropertyLookup  = "Property type not found"
	msgPetPropertyNotSave = "I couldn't save this pet property in database!"
)

// DefinePetType creates a pet type whose properties are the given ids, in
// order. Nothing is stored unless every id resolves.
func (s *Service) DefinePetType(ctx context.Context, in validation.PetTypeInput) (*domain.PetType, error) {
	return run(ctx, s, "DefinePetType", func(ctx context.Context) (*domain.PetType, error) {
		if err := s.validator.Check(in); err != nil {
			return nil, err
		}

		existing, err := s.storage.PetTypeByName(ctx, in.Name)
		if err != nil {
			return nil, fault(err, msgPetTypeLookup)
		}
		if existing != nil {
			return nil, serrors.With(serrors.ErrConflict, msgPetTypeExists)
		}

		props := make([]domain.PetProperty, 0, len(in.Properties))
		for _, raw := range in.Properties {
			id, ok := parseID(raw)
			if !ok {
				return nil, serrors.With(serrors.ErrNotFound, msgPropNotFound)
			}

			prop, err := s.storage.PetPropertyByID(ctx, domain.PetPropertyID(id))
			if err != nil {
				return nil, fault(err, msgPropNotFound)
			}
			if prop == nil {
				return nil, serrors.With(serrors.ErrNotFound, msgPropNotFound)
			}
			props = append(props, *prop)
		}

		petType, err := s.storage.StorePetType(ctx, domain.PetType{Name: in.Name, Properties: props})
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, msgPetTypeExists)
		}
		if err != nil {
			return nil, fault(err, msgPetTypeNotSaved)
		}

		return petType, nil
	})
}

// DefinePetProperty creates a pet property with its values stored as given.
func (s *Service) DefinePetProperty(ctx context.Context, in validation.PetPropertyInput) (*domain.PetProperty, error) {
	return run(ctx, s, "DefinePetProperty", func(ctx context.Context) (*domain.PetProperty, error) {
		if err := s.validator.Check(in); err != nil {
			return nil, err
		}

		existing, err := s.storage.PetPropertyByName(ctx, in.Name)
		if err != nil {
			return nil, fault(err, msgPetPropertyLookup)
		}
		if existing != nil {
			return nil, serrors.With(serrors.ErrConflict, msgPetPropertyExists)
		}

		prop, err := s.storage.StorePetProperty(ctx, domain.PetProperty{
			Name:         in.Name,
			Value:        in.Value,
			Weight:       in.Weight,
			ValuePerTime: in.ValuePerTime,
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, msgPetPropertyExists)
		}
		if err != nil {
			return nil, fault(err, msgPetPropertyNotSave)
		}

		return prop, nil
	})
}
