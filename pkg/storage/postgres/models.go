package postgres

import (
	"petregistry/pkg/domain"
	"time"

	"github.com/google/uuid"
)

const (
	usersTable             = "users"
	userPetsTable          = "user_pets"
	petTypesTable          = "pet_types"
	petTypePropertiesTable = "pet_type_properties"
	petPropertiesTable     = "pet_properties"
	petsTable              = "pets"
	petOwnersTable         = "pet_owners"
)

type PgUser struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Version      int64     `db:"version"       goqu:"skipinsert"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
}

// ToDomain converts the row and its ordered pet ids into a domain.User.
func (u *PgUser) ToDomain(petIDs []uuid.UUID) *domain.User {
	pets := make([]domain.PetID, 0, len(petIDs))
	for _, id := range petIDs {
		pets = append(pets, domain.PetID(id))
	}

	return &domain.User{
		ID:           domain.UserID(u.ID),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Pets:         pets,
		Version:      u.Version,
		CreatedAt:    u.CreatedAt,
	}
}

func (u *PgUser) FromDomain(user domain.User) {
	*u = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Version:      user.Version,
		CreatedAt:    user.CreatedAt,
	}
}

type PgPetProperty struct {
	ID           uuid.UUID `db:"id"             goqu:"skipinsert"`
	Name         string    `db:"name"`
	Value        string    `db:"value"`
	Weight       string    `db:"weight"`
	ValuePerTime string    `db:"value_per_time"`
	CreatedAt    time.Time `db:"created_at"     goqu:"skipinsert"`
}

func (p *PgPetProperty) ToDomain() *domain.PetProperty {
	return &domain.PetProperty{
		ID:           domain.PetPropertyID(p.ID),
		Name:         p.Name,
		Value:        p.Value,
		Weight:       p.Weight,
		ValuePerTime: p.ValuePerTime,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgPetProperty) FromDomain(property domain.PetProperty) {
	*p = PgPetProperty{
		ID:           uuid.UUID(property.ID),
		Name:         property.Name,
		Value:        property.Value,
		Weight:       property.Weight,
		ValuePerTime: property.ValuePerTime,
		CreatedAt:    property.CreatedAt,
	}
}

type PgPetType struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (t *PgPetType) ToDomain(properties []PgPetProperty) *domain.PetType {
	out := make([]domain.PetProperty, 0, len(properties))
	for i := range properties {
		out = append(out, *properties[i].ToDomain())
	}

	return &domain.PetType{
		ID:         domain.PetTypeID(t.ID),
		Name:       t.Name,
		Properties: out,
		CreatedAt:  t.CreatedAt,
	}
}

type PgPet struct {
	ID        uuid.UUID `db:"id"          goqu:"skipinsert"`
	Name      string    `db:"name"`
	Health    int       `db:"health"`
	PetTypeID uuid.UUID `db:"pet_type_id"`
	CreatedAt time.Time `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgPet) ToDomain(ownerIDs []uuid.UUID) *domain.Pet {
	owners := make([]domain.UserID, 0, len(ownerIDs))
	for _, id := range ownerIDs {
		owners = append(owners, domain.UserID(id))
	}

	return &domain.Pet{
		ID:        domain.PetID(p.ID),
		Name:      p.Name,
		Health:    p.Health,
		PetTypeID: domain.PetTypeID(p.PetTypeID),
		Owners:    owners,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgPet) FromDomain(pet domain.Pet) {
	*p = PgPet{
		ID:        uuid.UUID(pet.ID),
		Name:      pet.Name,
		Health:    pet.Health,
		PetTypeID: uuid.UUID(pet.PetTypeID),
		CreatedAt: pet.CreatedAt,
	}
}
