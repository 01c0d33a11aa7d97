package mongo

import (
	"petregistry/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPetTypeDoc_ResolvesPropertiesInStoredOrder(t *testing.T) {
	speed := domain.PetProperty{ID: domain.PetPropertyID(uuid.New()), Name: "speed", Value: "5", Weight: "2", ValuePerTime: "1.5"}
	hunger := domain.PetProperty{ID: domain.PetPropertyID(uuid.New()), Name: "hunger", Value: "3", Weight: "1", ValuePerTime: "10"}

	doc := petTypeToDoc(domain.PetType{
		ID:         domain.PetTypeID(uuid.New()),
		Name:       "Dog",
		Properties: []domain.PetProperty{hunger, speed},
		CreatedAt:  time.Now().UTC(),
	})
	require.Equal(t, []string{hunger.ID.String(), speed.ID.String()}, doc.PropertyIDs)

	props := map[string]petPropertyDoc{
		speed.ID.String():  petPropertyToDoc(speed),
		hunger.ID.String(): petPropertyToDoc(hunger),
	}
	got, err := doc.toDomain(props)
	require.NoError(t, err)
	require.Equal(t, []domain.PetPropertyID{hunger.ID, speed.ID}, got.PropertyIDs())
	require.Equal(t, "1.5", got.Properties[1].ValuePerTime)

	delete(props, speed.ID.String())
	_, err = doc.toDomain(props)
	require.Error(t, err)
}

func TestUserDoc_ToDomain(t *testing.T) {
	petID := domain.PetID(uuid.New())
	u := domain.User{
		ID:      domain.UserID(uuid.New()),
		Email:   "ann@b.com",
		Pets:    []domain.PetID{petID},
		Version: 2,
	}

	doc := userToDoc(u)
	require.Equal(t, []string{petID.String()}, doc.Pets)

	got, err := doc.toDomain()
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, []domain.PetID{petID}, got.Pets)

	doc.Pets = append(doc.Pets, "not-a-uuid")
	_, err = doc.toDomain()
	require.Error(t, err)
}

func TestPetDoc_ToDomain(t *testing.T) {
	owner := domain.UserID(uuid.New())
	pet := domain.NewPet("Rex", domain.PetType{ID: domain.PetTypeID(uuid.New()), Name: "Dog"}, owner)
	pet.ID = domain.PetID(uuid.New())

	doc := petToDoc(pet)
	got, err := doc.toDomain()
	require.NoError(t, err)
	require.Equal(t, pet.ID, got.ID)
	require.Equal(t, domain.InitialPetHealth, got.Health)
	require.Equal(t, pet.PetTypeID, got.PetTypeID)
	require.Equal(t, []domain.UserID{owner}, got.Owners)
	require.Nil(t, got.PetType)

	doc.PetTypeID = "bad"
	_, err = doc.toDomain()
	require.Error(t, err)
}
