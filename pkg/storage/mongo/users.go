package mongo

import (
	"context"
	"errors"
	"fmt"
	"petregistry/pkg/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (m *Mongo) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	user.ID = domain.UserID(uuid.New())
	user.Pets = []domain.PetID{}
	user.Version = 1
	user.CreatedAt = now()

	if err := m.insert(ctx, usersCollection, userToDoc(user)); err != nil {
		return nil, err
	}

	return &user, nil
}

func (m *Mongo) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	return m.userWhere(ctx, bson.M{"_id": ID.String()})
}

func (m *Mongo) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.userWhere(ctx, bson.M{"email": email})
}

// AppendUserPet pushes petID onto the user's pet list and bumps the version
// in a single update. The server applies it atomically, so concurrent appends
// all survive.
func (m *Mongo) AppendUserPet(ctx context.Context, userID domain.UserID, petID domain.PetID) (*domain.User, error) {
	var doc userDoc
	err := m.db.Collection(usersCollection).FindOneAndUpdate(
		m.opCtx(ctx),
		bson.M{"_id": userID.String()},
		bson.M{
			"$push": bson.M{"pets": petID.String()},
			"$inc":  bson.M{"version": 1},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not append user pet in mongo: %w", err)
	}

	return doc.toDomain()
}

func (m *Mongo) userWhere(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	found, err := m.findOne(ctx, usersCollection, filter, &doc)
	if err != nil || !found {
		return nil, err
	}

	return doc.toDomain()
}
