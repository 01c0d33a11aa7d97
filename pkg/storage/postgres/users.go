package postgres

import (
	"context"
	"fmt"
	"petregistry/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", uniqueViolation(err))
	}

	return stored.ToDomain(nil), nil
}

func (p *PgSQL) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(ID)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("email").Eq(email))
}

// AppendUserPet bumps the user's version, which locks the user row until the
// transaction ends, then records the pet at the end of the user's list.
func (p *PgSQL) AppendUserPet(ctx context.Context, userID domain.UserID, petID domain.PetID) (*domain.User, error) {
	var out *domain.User
	err := p.atomic(ctx, func(tx *PgSQL) error {
		var row PgUser
		found, err := tx.Builder.Update(usersTable).
			Set(goqu.Record{"version": goqu.L("version + 1")}).
			Where(goqu.I("id").Eq(uuid.UUID(userID))).
			Returning(&PgUser{}).
			Executor().ScanStructContext(ctx, &row)
		if err != nil {
			return fmt.Errorf("could not bump user version in pg: %w", err)
		}
		if !found {
			return nil
		}

		if _, err := tx.Builder.Insert(userPetsTable).
			Rows(goqu.Record{"user_id": row.ID, "pet_id": uuid.UUID(petID)}).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not append user pet in pg: %w", err)
		}

		petIDs, err := tx.userPetIDs(ctx, row.ID)
		if err != nil {
			return err
		}
		out = row.ToDomain(petIDs)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (p *PgSQL) userWhere(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	petIDs, err := p.userPetIDs(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return row.ToDomain(petIDs), nil
}

func (p *PgSQL) userPetIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(userPetsTable).
		Select("pet_id").
		Where(goqu.I("user_id").Eq(userID)).
		Order(goqu.I("seq").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch user pets from pg: %w", err)
	}

	return ids, nil
}
