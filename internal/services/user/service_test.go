package user

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flux/internal/errors"
	"flux/internal/models"
	"flux/internal/repositories"
	"flux/internal/utils"
	"flux/internal/validation"
)

// in-memory user/wallet store with an all-or-nothing unit-of-work
type fakeStore struct {
	users   []*models.User
	wallets []*models.Wallet
	nextID  uint
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.store.nextID++
	user.ID = r.store.nextID
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range r.store.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByDocument(ctx context.Context, document string) (*models.User, error) {
	for _, u := range r.store.users {
		if u.Document == document {
			return u, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

type fakeWalletRepo struct{ store *fakeStore }

func (r *fakeWalletRepo) Create(ctx context.Context, wallet *models.Wallet) error {
	r.store.wallets = append(r.store.wallets, wallet)
	return nil
}

func (r *fakeWalletRepo) GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	for _, w := range r.store.wallets {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, errors.ErrWalletMissing
}

func (r *fakeWalletRepo) GetByUserIDForUpdate(ctx context.Context, userID uint) (*models.Wallet, error) {
	return r.GetByUserID(ctx, userID)
}

func (r *fakeWalletRepo) Save(ctx context.Context, wallet *models.Wallet) error { return nil }

type fakeUoW struct{ store *fakeStore }

func (u *fakeUoW) RunAtomically(ctx context.Context, fn func(repositories.Stores) error) error {
	usersSnap := append([]*models.User(nil), u.store.users...)
	walletsSnap := append([]*models.Wallet(nil), u.store.wallets...)
	err := fn(repositories.Stores{
		Users:   &fakeUserRepo{store: u.store},
		Wallets: &fakeWalletRepo{store: u.store},
	})
	if err != nil {
		u.store.users = usersSnap
		u.store.wallets = walletsSnap
	}
	return err
}

func newTestService(store *fakeStore) Service {
	return NewService(&fakeUserRepo{store: store}, &fakeUoW{store: store}, decimal.NewFromFloat(10.00))
}

func validInput() RegisterInput {
	return RegisterInput{
		FullName: "Alice Souza",
		Document: "529.982.247-25",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
		Type:     "COMMON",
	}
}

func TestRegister_CreatesUserAndWallet(t *testing.T) {
	store := &fakeStore{}
	service := newTestService(store)

	created, err := service.Register(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "52998224725", created.Document, "document is stored as bare digits")
	assert.Equal(t, models.UserTypeCommon, created.Type)
	assert.NotEqual(t, "Sup3rSecret", created.Password)
	assert.True(t, utils.CheckPassword(created.Password, "Sup3rSecret"))

	require.Len(t, store.wallets, 1)
	assert.Equal(t, created.ID, store.wallets[0].UserID)
	assert.True(t, store.wallets[0].Balance.Equal(decimal.NewFromFloat(10.00)))
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	store := &fakeStore{}
	service := newTestService(store)

	_, err := service.Register(context.Background(), validInput())
	require.NoError(t, err)

	dup := validInput()
	_, err = service.Register(context.Background(), dup)
	assert.ErrorIs(t, err, errors.ErrEmailTaken)

	dup.Email = "other@example.com"
	_, err = service.Register(context.Background(), dup)
	assert.ErrorIs(t, err, errors.ErrDocumentTaken)

	assert.Len(t, store.users, 1)
	assert.Len(t, store.wallets, 1)
}

func TestRegister_ValidatesInput(t *testing.T) {
	service := newTestService(&fakeStore{})

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{
			name:    "bad document",
			mutate:  func(in *RegisterInput) { in.Document = "111.111.111-11" },
			wantErr: validation.ErrInvalidDocument,
		},
		{
			name:    "bad email",
			mutate:  func(in *RegisterInput) { in.Email = "not-an-email" },
			wantErr: validation.ErrInvalidEmail,
		},
		{
			name:    "weak password",
			mutate:  func(in *RegisterInput) { in.Password = "weak" },
			wantErr: validation.ErrWeakPassword,
		},
		{
			name:    "bad type",
			mutate:  func(in *RegisterInput) { in.Type = "ADMIN" },
			wantErr: validation.ErrInvalidUserType,
		},
		{
			name:    "missing name",
			mutate:  func(in *RegisterInput) { in.FullName = "" },
			wantErr: validation.ErrInvalidFullName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := service.Register(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
