package mongo

import (
	"context"
	"fmt"
	"petregistry/pkg/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (m *Mongo) StorePet(ctx context.Context, pet domain.Pet) (*domain.Pet, error) {
	pet.ID = domain.PetID(uuid.New())
	pet.PetType = nil
	pet.CreatedAt = now()

	if err := m.insert(ctx, petsCollection, petToDoc(pet)); err != nil {
		return nil, err
	}

	return &pet, nil
}

func (m *Mongo) PetByID(ctx context.Context, ID domain.PetID) (*domain.Pet, error) {
	var doc petDoc
	found, err := m.findOne(ctx, petsCollection, bson.M{"_id": ID.String()}, &doc)
	if err != nil || !found {
		return nil, err
	}

	return doc.toDomain()
}

func (m *Mongo) PetsByOwner(ctx context.Context, userID domain.UserID) ([]domain.Pet, error) {
	cur, err := m.db.Collection(petsCollection).Find(
		m.opCtx(ctx),
		bson.M{"owners": userID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("could not fetch pets by owner from mongo: %w", err)
	}

	var docs []petDoc
	if err := cur.All(m.opCtx(ctx), &docs); err != nil {
		return nil, fmt.Errorf("could not decode pets: %w", err)
	}

	out := make([]domain.Pet, 0, len(docs))
	for i := range docs {
		p, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}

	return out, nil
}
