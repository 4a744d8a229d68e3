package authsvc

import (
	"context"
	"errors"
	"testing"

	"bookstore/model"
	"bookstore/util/hash"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	byIDFn    func(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

var _ Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) ByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if m.byIDFn == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.byIDFn(ctx, id)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	assigned := primitive.NewObjectID()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = assigned
			return nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Register(ctx, model.RegisterReq{
		Email:    "USER@Example.COM",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, assigned, u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.Equal(t, model.RoleUser, u.Role)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "supersecret", u.PasswordHash)
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Email:    " ",
		Password: "123",
	})
	require.ErrorIs(t, err, ErrBadInput)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: primitive.NewObjectID(), Email: email}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Email:    "taken@example.com",
		Password: "123456",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	dbDown := errors.New("db down")
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return dbDown
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Email:    "ok@example.com",
		Password: "123456",
	})
	require.ErrorIs(t, err, dbDown)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	pw := "supersecret"
	hashed := mustHash(t, pw)
	uid := primitive.NewObjectID()

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           uid,
				Email:        "user@example.com",
				PasswordHash: hashed,
				Role:         model.RoleUser,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{
		Email:    "User@Example.com",
		Password: pw,
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, uid, u.ID)
}

func TestLogin_UserNotFound(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           primitive.NewObjectID(),
				Email:        "user@example.com",
				PasswordHash: hashed,
				Role:         model.RoleUser,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestProfile_NotFound(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret")

	_, err := svc.Profile(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotFound)
}
