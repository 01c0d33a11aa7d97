package mongo

import (
	"fmt"
	"petregistry/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	Pets         []string  `bson:"pets"`
	Version      int64     `bson:"version"`
	CreatedAt    time.Time `bson:"created_at"`
}

type petPropertyDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Value        string    `bson:"value"`
	Weight       string    `bson:"weight"`
	ValuePerTime string    `bson:"value_per_time"`
	CreatedAt    time.Time `bson:"created_at"`
}

type petTypeDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	PropertyIDs []string  `bson:"property_ids"`
	CreatedAt   time.Time `bson:"created_at"`
}

type petDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Health    int       `bson:"health"`
	PetTypeID string    `bson:"pet_type_id"`
	Owners    []string  `bson:"owners"`
	CreatedAt time.Time `bson:"created_at"`
}

func uuidStrings[T ~[16]byte](ids []T) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, uuid.UUID(id).String())
	}

	return out
}

func parseUUIDs[T ~[16]byte](ids []string) ([]T, error) {
	out := make([]T, 0, len(ids))
	for _, s := range ids {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("could not parse stored id %q: %w", s, err)
		}
		out = append(out, T(id))
	}

	return out, nil
}

func userToDoc(u domain.User) userDoc {
	return userDoc{
		ID:           uuid.UUID(u.ID).String(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Pets:         uuidStrings(u.Pets),
		Version:      u.Version,
		CreatedAt:    u.CreatedAt,
	}
}

func (d *userDoc) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse user id: %w", err)
	}
	pets, err := parseUUIDs[domain.PetID](d.Pets)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:           domain.UserID(id),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Pets:         pets,
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
	}, nil
}

func petPropertyToDoc(p domain.PetProperty) petPropertyDoc {
	return petPropertyDoc{
		ID:           uuid.UUID(p.ID).String(),
		Name:         p.Name,
		Value:        p.Value,
		Weight:       p.Weight,
		ValuePerTime: p.ValuePerTime,
		CreatedAt:    p.CreatedAt,
	}
}

func (d *petPropertyDoc) toDomain() (*domain.PetProperty, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse pet property id: %w", err)
	}

	return &domain.PetProperty{
		ID:           domain.PetPropertyID(id),
		Name:         d.Name,
		Value:        d.Value,
		Weight:       d.Weight,
		ValuePerTime: d.ValuePerTime,
		CreatedAt:    d.CreatedAt,
	}, nil
}

func petTypeToDoc(t domain.PetType) petTypeDoc {
	return petTypeDoc{
		ID:          uuid.UUID(t.ID).String(),
		Name:        t.Name,
		PropertyIDs: uuidStrings(t.PropertyIDs()),
		CreatedAt:   t.CreatedAt,
	}
}

// toDomain resolves the type's property references against props, keeping
// the stored order.
func (d *petTypeDoc) toDomain(props map[string]petPropertyDoc) (*domain.PetType, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse pet type id: %w", err)
	}

	out := make([]domain.PetProperty, 0, len(d.PropertyIDs))
	for _, pid := range d.PropertyIDs {
		doc, ok := props[pid]
		if !ok {
			return nil, fmt.Errorf("pet type %s references missing property %s", d.ID, pid)
		}
		p, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}

	return &domain.PetType{
		ID:         domain.PetTypeID(id),
		Name:       d.Name,
		Properties: out,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func petToDoc(p domain.Pet) petDoc {
	return petDoc{
		ID:        uuid.UUID(p.ID).String(),
		Name:      p.Name,
		Health:    p.Health,
		PetTypeID: uuid.UUID(p.PetTypeID).String(),
		Owners:    uuidStrings(p.Owners),
		CreatedAt: p.CreatedAt,
	}
}

func (d *petDoc) toDomain() (*domain.Pet, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse pet id: %w", err)
	}
	typeID, err := uuid.Parse(d.PetTypeID)
	if err != nil {
		return nil, fmt.Errorf("could not parse pet type id: %w", err)
	}
	owners, err := parseUUIDs[domain.UserID](d.Owners)
	if err != nil {
		return nil, err
	}

	return &domain.Pet{
		ID:        domain.PetID(id),
		Name:      d.Name,
		Health:    d.Health,
		PetTypeID: domain.PetTypeID(typeID),
		Owners:    owners,
		CreatedAt: d.CreatedAt,
	}, nil
}
