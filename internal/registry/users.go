package registry

import (
	"context"
	"errors"
	"petregistry/internal/validation"
	"petregistry/pkg/domain"
	"petregistry/pkg/serrors"
	"petregistry/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

const (
	msgUserExists     = "User with this email exists!"
	msgUserNotFound   = "User not found"
	msgInvalidPass    = "Invalid password"
	msgUserLookup     = "I could not find this user."
	msgUserNotCreated = "I couldn't create this user."
	msgUserNotSaved   = "I couldn't save this user in database!"
)

// RegisterUser validates the input, rejects a taken email and stores the
// user with its password hashed. The returned user carries the hash.
func (s *Service) RegisterUser(ctx context.Context, in validation.UserInput) (*domain.User, error) {
	return run(ctx, s, "RegisterUser", func(ctx context.Context) (*domain.User, error) {
		if err := s.validator.Check(in); err != nil {
			return nil, err
		}

		existing, err := s.storage.UserByEmail(ctx, in.Email)
		if err != nil {
			return nil, fault(err, msgUserLookup)
		}
		if existing != nil {
			return nil, serrors.With(serrors.ErrConflict, msgUserExists)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.opts.BcryptCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, serrors.WithData(serrors.ErrValidation,
				[]string{"password must be at most 72 bytes long"}, validation.FailedMessage)
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrInternal, err, msgUserNotCreated)
		}

		user, err := s.storage.StoreUser(ctx, domain.User{
			Email:        in.Email,
			PasswordHash: string(hash),
			FirstName:    in.FirstName,
			LastName:     in.LastName,
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, msgUserExists)
		}
		if err != nil {
			return nil, fault(err, msgUserNotSaved)
		}

		return user, nil
	})
}

// Login verifies the credentials and issues a token for the user. An unknown
// email and a wrong password are both ErrUnauthorized, with distinct messages.
func (s *Service) Login(ctx context.Context, in validation.LoginInput) (*LoginResult, error) {
	return run(ctx, s, "Login", func(ctx context.Context) (*LoginResult, error) {
		user, err := s.storage.UserByEmail(ctx, in.Email)
		if err != nil {
			return nil, fault(err, msgUserLookup)
		}
		if user == nil {
			return nil, serrors.With(serrors.ErrUnauthorized, msgUserNotFound)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
			return nil, serrors.Wrap(serrors.ErrUnauthorized, err, msgInvalidPass)
		}

		token, err := s.tokens.IssueToken(user.ID, user.Email)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrInternal, err, "could not issue token")
		}

		return &LoginResult{Token: token.Value, UserID: user.ID, ExpiresAt: token.ExpiresAt}, nil
	})
}
