package v1handler

import (
	"petregistry/internal/registry"
	"petregistry/pkg/domain"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	// Password holds the bcrypt hash, never the plaintext.
	Password  string    `json:"password"`
	Pets      []string  `json:"pets"`
	CreatedAt time.Time `json:"createdAt"`
}

type PetProperty struct {
	ID           string    `json:"id"`
	Name         string    `json:"propName"`
	Value        string    `json:"propValue"`
	Weight       string    `json:"propWeight"`
	ValuePerTime string    `json:"propValPerTime"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PetType struct {
	ID         string        `json:"id"`
	Name       string        `json:"petTypeName"`
	Properties []PetProperty `json:"properties"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"petName"`
	Health    int       `json:"health"`
	PetType   *PetType  `json:"petType"`
	Owners    []string  `json:"owners"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func ids[T interface{ String() string }](in []T) []string {
	out := make([]string, 0, len(in))
	for _, id := range in {
		out = append(out, id.String())
	}

	return out
}

func DomainUserToV1(in *domain.User) *User {
	return &User{
		ID:        in.ID.String(),
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.PasswordHash,
		Pets:      ids(in.Pets),
		CreatedAt: in.CreatedAt,
	}
}

func DomainPetPropertyToV1(in *domain.PetProperty) *PetProperty {
	return &PetProperty{
		ID:           in.ID.String(),
		Name:         in.Name,
		Value:        in.Value,
		Weight:       in.Weight,
		ValuePerTime: in.ValuePerTime,
		CreatedAt:    in.CreatedAt,
	}
}

func DomainPetTypeToV1(in *domain.PetType) *PetType {
	props := make([]PetProperty, 0, len(in.Properties))
	for i := range in.Properties {
		props = append(props, *DomainPetPropertyToV1(&in.Properties[i]))
	}

	return &PetType{
		ID:         in.ID.String(),
		Name:       in.Name,
		Properties: props,
		CreatedAt:  in.CreatedAt,
	}
}

func DomainPetToV1(in *domain.Pet) *Pet {
	out := &Pet{
		ID:        in.ID.String(),
		Name:      in.Name,
		Health:    in.Health,
		Owners:    ids(in.Owners),
		CreatedAt: in.CreatedAt,
	}
	if in.PetType != nil {
		out.PetType = DomainPetTypeToV1(in.PetType)
	}

	return out
}

func LoginResultToV1(in *registry.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     in.Token,
		UserID:    in.UserID.String(),
		ExpiresAt: in.ExpiresAt,
	}
}
