package postgres

import (
	"context"
	"fmt"
	"petregistry/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StorePetProperty(ctx context.Context, property domain.PetProperty) (*domain.PetProperty, error) {
	var row PgPetProperty
	row.FromDomain(property)

	var stored PgPetProperty
	if _, err := p.Builder.Insert(petPropertiesTable).
		Rows(row).
		Returning(&PgPetProperty{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store pet property into pg: %w", uniqueViolation(err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) PetPropertyByID(ctx context.Context, ID domain.PetPropertyID) (*domain.PetProperty, error) {
	return p.petPropertyWhere(ctx, goqu.I("id").Eq(uuid.UUID(ID)))
}

func (p *PgSQL) PetPropertyByName(ctx context.Context, name string) (*domain.PetProperty, error) {
	return p.petPropertyWhere(ctx, goqu.I("name").Eq(name))
}

func (p *PgSQL) petPropertyWhere(ctx context.Context, where goqu.Expression) (*domain.PetProperty, error) {
	var row PgPetProperty
	found, err := p.Builder.From(petPropertiesTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch pet property from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StorePetType inserts the type and its ordered property links in one
// transaction. Properties must already exist.
func (p *PgSQL) StorePetType(ctx context.Context, petType domain.PetType) (*domain.PetType, error) {
	var out *domain.PetType
	err := p.atomic(ctx, func(tx *PgSQL) error {
		var stored PgPetType
		if _, err := tx.Builder.Insert(petTypesTable).
			Rows(PgPetType{Name: petType.Name}).
			Returning(&PgPetType{}).
			Executor().ScanStructContext(ctx, &stored); err != nil {
			return fmt.Errorf("could not store pet type into pg: %w", uniqueViolation(err))
		}

		if len(petType.Properties) > 0 {
			links := make([]goqu.Record, 0, len(petType.Properties))
			for i, prop := range petType.Properties {
				links = append(links, goqu.Record{
					"pet_type_id": stored.ID,
					"property_id": uuid.UUID(prop.ID),
					"position":    i,
				})
			}
			if _, err := tx.Builder.Insert(petTypePropertiesTable).
				Rows(links).
				Executor().ExecContext(ctx); err != nil {
				return fmt.Errorf("could not link pet type properties in pg: %w", err)
			}
		}

		props, err := tx.petTypeProperties(ctx, stored.ID)
		if err != nil {
			return err
		}
		out = stored.ToDomain(props)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (p *PgSQL) PetTypeByID(ctx context.Context, ID domain.PetTypeID) (*domain.PetType, error) {
	return p.petTypeWhere(ctx, goqu.I("id").Eq(uuid.UUID(ID)))
}

func (p *PgSQL) PetTypeByName(ctx context.Context, name string) (*domain.PetType, error) {
	return p.petTypeWhere(ctx, goqu.I("name").Eq(name))
}

func (p *PgSQL) petTypeWhere(ctx context.Context, where goqu.Expression) (*domain.PetType, error) {
	var row PgPetType
	found, err := p.Builder.From(petTypesTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch pet type from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	props, err := p.petTypeProperties(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return row.ToDomain(props), nil
}

func (p *PgSQL) petTypeProperties(ctx context.Context, petTypeID uuid.UUID) ([]PgPetProperty, error) {
	var rows []PgPetProperty
	if err := p.Builder.From(petPropertiesTable).
		Join(goqu.T(petTypePropertiesTable), goqu.On(
			goqu.T(petTypePropertiesTable).Col("property_id").Eq(goqu.T(petPropertiesTable).Col("id")),
		)).
		Select(goqu.T(petPropertiesTable).All()).
		Where(goqu.T(petTypePropertiesTable).Col("pet_type_id").Eq(petTypeID)).
		Order(goqu.T(petTypePropertiesTable).Col("position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch pet type properties from pg: %w", err)
	}

	return rows, nil
}
