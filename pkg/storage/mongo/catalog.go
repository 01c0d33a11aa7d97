package mongo

import (
	"context"
	"fmt"
	"petregistry/pkg/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (m *Mongo) StorePetProperty(ctx context.Context, property domain.PetProperty) (*domain.PetProperty, error) {
	property.ID = domain.PetPropertyID(uuid.New())
	property.CreatedAt = now()

	if err := m.insert(ctx, petPropertiesCollection, petPropertyToDoc(property)); err != nil {
		return nil, err
	}

	return &property, nil
}

func (m *Mongo) PetPropertyByID(ctx context.Context, ID domain.PetPropertyID) (*domain.PetProperty, error) {
	return m.petPropertyWhere(ctx, bson.M{"_id": ID.String()})
}

func (m *Mongo) PetPropertyByName(ctx context.Context, name string) (*domain.PetProperty, error) {
	return m.petPropertyWhere(ctx, bson.M{"name": name})
}

func (m *Mongo) petPropertyWhere(ctx context.Context, filter bson.M) (*domain.PetProperty, error) {
	var doc petPropertyDoc
	found, err := m.findOne(ctx, petPropertiesCollection, filter, &doc)
	if err != nil || !found {
		return nil, err
	}

	return doc.toDomain()
}

func (m *Mongo) StorePetType(ctx context.Context, petType domain.PetType) (*domain.PetType, error) {
	petType.ID = domain.PetTypeID(uuid.New())
	petType.CreatedAt = now()

	if err := m.insert(ctx, petTypesCollection, petTypeToDoc(petType)); err != nil {
		return nil, err
	}

	return &petType, nil
}

func (m *Mongo) PetTypeByID(ctx context.Context, ID domain.PetTypeID) (*domain.PetType, error) {
	return m.petTypeWhere(ctx, bson.M{"_id": ID.String()})
}

func (m *Mongo) PetTypeByName(ctx context.Context, name string) (*domain.PetType, error) {
	return m.petTypeWhere(ctx, bson.M{"name": name})
}

func (m *Mongo) petTypeWhere(ctx context.Context, filter bson.M) (*domain.PetType, error) {
	var doc petTypeDoc
	found, err := m.findOne(ctx, petTypesCollection, filter, &doc)
	if err != nil || !found {
		return nil, err
	}

	props, err := m.propertiesByIDs(ctx, doc.PropertyIDs)
	if err != nil {
		return nil, err
	}

	return doc.toDomain(props)
}

func (m *Mongo) propertiesByIDs(ctx context.Context, ids []string) (map[string]petPropertyDoc, error) {
	out := make(map[string]petPropertyDoc, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := m.db.Collection(petPropertiesCollection).Find(m.opCtx(ctx), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("could not fetch pet properties from mongo: %w", err)
	}

	var docs []petPropertyDoc
	if err := cur.All(m.opCtx(ctx), &docs); err != nil {
		return nil, fmt.Errorf("could not decode pet properties: %w", err)
	}
	for _, d := range docs {
		out[d.ID] = d
	}

	return out, nil
}
