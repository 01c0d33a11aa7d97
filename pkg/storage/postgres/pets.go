package postgres

import (
	"context"
	"fmt"
	"petregistry/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// StorePet inserts the pet and its owner links in one transaction.
func (p *PgSQL) StorePet(ctx context.Context, pet domain.Pet) (*domain.Pet, error) {
	var row PgPet
	row.FromDomain(pet)

	var out *domain.Pet
	err := p.atomic(ctx, func(tx *PgSQL) error {
		var stored PgPet
		if _, err := tx.Builder.Insert(petsTable).
			Rows(row).
			Returning(&PgPet{}).
			Executor().ScanStructContext(ctx, &stored); err != nil {
			return fmt.Errorf("could not store pet into pg: %w", err)
		}

		owners := make([]uuid.UUID, 0, len(pet.Owners))
		if len(pet.Owners) > 0 {
			links := make([]goqu.Record, 0, len(pet.Owners))
			for i, owner := range pet.Owners {
				owners = append(owners, uuid.UUID(owner))
				links = append(links, goqu.Record{
					"pet_id":   stored.ID,
					"user_id":  uuid.UUID(owner),
					"position": i,
				})
			}
			if _, err := tx.Builder.Insert(petOwnersTable).
				Rows(links).
				Executor().ExecContext(ctx); err != nil {
				return fmt.Errorf("could not store pet owners into pg: %w", err)
			}
		}
		out = stored.ToDomain(owners)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (p *PgSQL) PetByID(ctx context.Context, ID domain.PetID) (*domain.Pet, error) {
	var row PgPet
	found, err := p.Builder.From(petsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch pet from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	owners, err := p.petOwnerIDs(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return row.ToDomain(owners), nil
}

// PetsByOwner returns the user's pets ordered by creation time, oldest first.
func (p *PgSQL) PetsByOwner(ctx context.Context, userID domain.UserID) ([]domain.Pet, error) {
	var rows []PgPet
	if err := p.Builder.From(petsTable).
		Join(goqu.T(petOwnersTable), goqu.On(
			goqu.T(petOwnersTable).Col("pet_id").Eq(goqu.T(petsTable).Col("id")),
		)).
		Select(goqu.T(petsTable).All()).
		Where(goqu.T(petOwnersTable).Col("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.T(petsTable).Col("created_at").Asc(), goqu.T(petsTable).Col("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch pets by owner from pg: %w", err)
	}

	out := make([]domain.Pet, 0, len(rows))
	for i := range rows {
		owners, err := p.petOwnerIDs(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *rows[i].ToDomain(owners))
	}

	return out, nil
}

func (p *PgSQL) petOwnerIDs(ctx context.Context, petID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(petOwnersTable).
		Select("user_id").
		Where(goqu.I("pet_id").Eq(petID)).
		Order(goqu.I("position").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch pet owners from pg: %w", err)
	}

	return ids, nil
}
