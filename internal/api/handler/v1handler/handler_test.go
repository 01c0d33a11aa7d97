package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"petregistry/internal/api/handler/v1handler"
	"petregistry/internal/auth"
	"petregistry/internal/registry"
	mockregistry "petregistry/internal/registry/mock"
	"petregistry/internal/validation"
	"petregistry/pkg/domain"
	"petregistry/pkg/logger"
	"petregistry/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testEnv struct {
	reg    *mockregistry.MockRegistry
	gw     *auth.Gateway
	router http.Handler
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	reg := mockregistry.NewMockRegistry(gomock.NewController(t))
	gw, err := auth.New(auth.Options{Secret: "handler-test-secret"})
	require.NoError(t, err)

	r := chi.NewRouter()
	v1handler.New(v1handler.Deps{Registry: reg, Auth: gw}).Routes(r)

	return testEnv{reg: reg, gw: gw, router: r}
}

func (e testEnv) do(ctx context.Context, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestCreateUser(t *testing.T) {
	e := newTestEnv(t)
	id := domain.UserID(uuid.New())
	petID := domain.PetID(uuid.New())

	e.reg.EXPECT().RegisterUser(gomock.Any(), validation.UserInput{
		Email: "a@b.com", FirstName: "Ann", LastName: "Lee", Password: "secret1",
	}).Return(&domain.User{
		ID: id, Email: "a@b.com", FirstName: "Ann", LastName: "Lee",
		PasswordHash: "$2a$12$hash", Pets: []domain.PetID{petID}, Version: 2,
	}, nil)

	rec := e.do(context.Background(), http.MethodPost, "/users",
		`{"email":"a@b.com","firstName":"Ann","lastName":"Lee","password":"secret1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	got := decodeBody[v1handler.User](t, rec)
	require.Equal(t, id.String(), got.ID)
	require.Equal(t, "a@b.com", got.Email)
	require.Equal(t, "$2a$12$hash", got.Password)
	require.Equal(t, []string{petID.String()}, got.Pets)
}

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   v1handler.ErrorResponse
	}{
		{
			name:   "validation",
			err:    serrors.WithData(serrors.ErrValidation, []string{"email must be a valid email address"}, validation.FailedMessage),
			status: http.StatusUnprocessableEntity,
			want: v1handler.ErrorResponse{
				Message: "Validation failed.", Status: 422, Data: []string{"email must be a valid email address"},
			},
		},
		{
			name:   "conflict",
			err:    serrors.With(serrors.ErrConflict, "User with this email exists!"),
			status: http.StatusUnprocessableEntity,
			want:   v1handler.ErrorResponse{Message: "User with this email exists!", Status: 422},
		},
		{
			name:   "storage fault hides cause",
			err:    serrors.Wrap(serrors.ErrStorage, errors.New("dial tcp: refused"), "I couldn't save this user in database!"),
			status: http.StatusInternalServerError,
			want:   v1handler.ErrorResponse{Message: "I couldn't save this user in database!", Status: 500},
		},
		{
			name:   "unclassified",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			want:   v1handler.ErrorResponse{Message: "internal error", Status: 500},
		},
		{
			name:   "timeout",
			err:    serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "request timed out"),
			status: http.StatusGatewayTimeout,
			want:   v1handler.ErrorResponse{Message: "request timed out", Status: 504},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			e.reg.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := e.do(context.Background(), http.MethodPost, "/users", `{"email":"a@b.com"}`, nil)
			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, tt.want, decodeBody[v1handler.ErrorResponse](t, rec))
		})
	}
}

func TestStorageFaultsLoggedAtErrorLevel(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	e := newTestEnv(t)
	e.reg.EXPECT().DefinePetProperty(gomock.Any(), gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrStorage, errors.New("dial tcp: refused"), "I couldn't save this pet property in database!"))
	e.reg.EXPECT().DefinePetProperty(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "This kind of pet property already exists."))

	body := `{"propName":"speed","propValue":"1","propWeight":"1","propValPerTime":"1"}`
	e.do(ctx, http.MethodPost, "/pet-properties", body, nil)
	e.do(ctx, http.MethodPost, "/pet-properties", body, nil)

	failed := logs.FilterMessage("request failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	require.Equal(t, "STORAGE", failed[0].ContextMap()["kind"])
	require.Contains(t, failed[0].ContextMap()["error"], "dial tcp: refused")

	rejected := logs.FilterMessage("request rejected").All()
	require.Len(t, rejected, 1)
	require.Equal(t, zapcore.DebugLevel, rejected[0].Level)
}

func TestMalformedBody(t *testing.T) {
	for _, body := range []string{`{"email":`, `[]`, `{"email":"a@b.com"} {}`} {
		t.Run(body, func(t *testing.T) {
			e := newTestEnv(t)

			rec := e.do(context.Background(), http.MethodPost, "/users", body, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "invalid request body", decodeBody[v1handler.ErrorResponse](t, rec).Message)
		})
	}
}

func TestLogin(t *testing.T) {
	e := newTestEnv(t)
	id := domain.UserID(uuid.New())
	expires := time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)

	e.reg.EXPECT().Login(gomock.Any(), validation.LoginInput{Email: "a@b.com", Password: "secret1"}).
		Return(&registry.LoginResult{Token: "tok", UserID: id, ExpiresAt: expires}, nil)
	e.reg.EXPECT().Login(gomock.Any(), validation.LoginInput{Email: "a@b.com", Password: "nope"}).
		Return(nil, serrors.With(serrors.ErrUnauthorized, "Invalid password"))

	rec := e.do(context.Background(), http.MethodPost, "/login", `{"email":"a@b.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[v1handler.LoginResponse](t, rec)
	require.Equal(t, "tok", got.Token)
	require.Equal(t, id.String(), got.UserID)
	require.True(t, expires.Equal(got.ExpiresAt))

	rec = e.do(context.Background(), http.MethodPost, "/login", `{"email":"a@b.com","password":"nope"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, v1handler.ErrorResponse{Message: "Invalid password", Status: 401},
		decodeBody[v1handler.ErrorResponse](t, rec))
}

func TestCreatePetType(t *testing.T) {
	e := newTestEnv(t)
	prop := domain.PetProperty{
		ID: domain.PetPropertyID(uuid.New()), Name: "speed", Value: "5", Weight: "2", ValuePerTime: "1.5",
	}
	typeID := domain.PetTypeID(uuid.New())

	e.reg.EXPECT().DefinePetType(gomock.Any(), validation.PetTypeInput{Name: "Dog", Properties: []string{prop.ID.String()}}).
		Return(&domain.PetType{ID: typeID, Name: "Dog", Properties: []domain.PetProperty{prop}}, nil)

	rec := e.do(context.Background(), http.MethodPost, "/pet-types",
		`{"petTypeName":"Dog","properties":["`+prop.ID.String()+`"]}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decodeBody[v1handler.PetType](t, rec)
	require.Equal(t, typeID.String(), got.ID)
	require.Equal(t, "Dog", got.Name)
	require.Len(t, got.Properties, 1)
	require.Equal(t, "speed", got.Properties[0].Name)
	require.Equal(t, "1.5", got.Properties[0].ValuePerTime)
}

func TestAddPetToUser_PassesAuthContext(t *testing.T) {
	e := newTestEnv(t)
	userID := domain.UserID(uuid.New())
	typeID := domain.PetTypeID(uuid.New())
	in := validation.PetInput{Name: "Rex", PetTypeID: typeID.String()}
	body := `{"petName":"Rex","petTypeId":"` + typeID.String() + `"}`

	token, err := e.gw.IssueToken(userID, "a@b.com")
	require.NoError(t, err)

	e.reg.EXPECT().AssignPetToUser(gomock.Any(), auth.Context{UserID: userID.String(), Email: "a@b.com"}, in).
		Return(&domain.Pet{
			ID: domain.PetID(uuid.New()), Name: "Rex", Health: domain.InitialPetHealth, PetTypeID: typeID,
			PetType: &domain.PetType{ID: typeID, Name: "Dog"}, Owners: []domain.UserID{userID},
		}, nil)

	rec := e.do(context.Background(), http.MethodPost, "/pets", body,
		http.Header{"Authorization": {"Bearer " + token.Value}})
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decodeBody[v1handler.Pet](t, rec)
	require.Equal(t, "Rex", got.Name)
	require.Equal(t, 100, got.Health)
	require.NotNil(t, got.PetType)
	require.Equal(t, "Dog", got.PetType.Name)
	require.Equal(t, []string{userID.String()}, got.Owners)

	for name, header := range map[string]http.Header{
		"no header":     nil,
		"garbled token": {"Authorization": {"Bearer not-a-jwt"}},
		"wrong scheme":  {"Authorization": {"Basic " + token.Value}},
	} {
		t.Run(name, func(t *testing.T) {
			e.reg.EXPECT().AssignPetToUser(gomock.Any(), auth.Context{}, in).
				Return(nil, serrors.With(serrors.ErrUnauthorized, auth.NotAuthenticatedMessage))

			rec := e.do(context.Background(), http.MethodPost, "/pets", body, header)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, "Not authenticated!", decodeBody[v1handler.ErrorResponse](t, rec).Message)
		})
	}
}

func TestAuthContext_WithoutMiddleware(t *testing.T) {
	require.False(t, v1handler.AuthContext(context.Background()).IsAuthenticated())
}
