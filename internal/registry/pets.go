package registry

import (
	"context"
	"petregistry/internal/auth"
	"petregistry/internal/validation"
	"petregistry/pkg/domain"
	"petregistry/pkg/serrors"
	"petregistry/pkg/storage"
)

const (
	msgPetTypeMissing = "This pet type does not exist."
	msgPetTypeFind    = "I could not find this pet type."
	msgUserMissing    = "User does not exist."
	msgPetNotSaved    = "I could not save a new pet."
)

// AssignPetToUser creates a pet of the given type owned by the caller. The
// caller must be authenticated; the check runs after validation and before
// any storage access.
func (s *Service) AssignPetToUser(ctx context.Context, ac auth.Context, in validation.PetInput) (*domain.Pet, error) {
	return run(ctx, s, "AssignPetToUser", func(ctx context.Context) (*domain.Pet, error) {
		if err := s.validator.Check(in); err != nil {
			return nil, err
		}
		if err := ac.Require(); err != nil {
			return nil, err
		}

		petType, err := s.petType(ctx, in.PetTypeID)
		if err != nil {
			return nil, err
		}

		user, err := s.user(ctx, ac.UserID)
		if err != nil {
			return nil, err
		}

		pet, err := s.linkPet(ctx, domain.NewPet(in.Name, *petType, user.ID))
		if err != nil {
			return nil, err
		}
		pet.PetType = petType

		return pet, nil
	})
}

func (s *Service) petType(ctx context.Context, rawID string) (*domain.PetType, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, msgPetTypeMissing)
	}

	petType, err := s.storage.PetTypeByID(ctx, domain.PetTypeID(id))
	if err != nil {
		return nil, fault(err, msgPetTypeFind)
	}
	if petType == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgPetTypeMissing)
	}

	return petType, nil
}

func (s *Service) user(ctx context.Context, rawID string) (*domain.User, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, msgUserMissing)
	}

	user, err := s.storage.UserByID(ctx, domain.UserID(id))
	if err != nil {
		return nil, fault(err, msgUserLookup)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgUserMissing)
	}

	return user, nil
}

// linkPet stores pet and appends it to its owner's pet list in one
// transaction. If either write fails, neither is visible.
func (s *Service) linkPet(ctx context.Context, pet domain.Pet) (*domain.Pet, error) {
	owner := pet.Owners[0]

	var created *domain.Pet
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StorePet(ctx, pet)
		if err != nil {
			return err
		}

		updated, err := tx.AppendUserPet(ctx, owner, stored.ID)
		if err != nil {
			return err
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, msgUserMissing)
		}
		created = stored

		return nil
	})
	if err != nil {
		return nil, fault(err, msgPetNotSaved)
	}

	return created, nil
}
