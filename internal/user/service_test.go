package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/testutil"
	"github.com/saulo-duarte/chronos-workspace/internal/user"
)

func newService(t *testing.T) (user.UserService, *cache.Recorder) {
	t.Helper()
	db := testutil.OpenDB(t, &user.User{})
	rec := &cache.Recorder{}
	return user.NewService(user.NewRepository(db), rec), rec
}

func strPtr(s string) *string { return &s }

func TestGetMe_ProvisionsFromClaims(t *testing.T) {
	svc, _ := newService(t)
	id, ctx := testutil.NewUser(t)

	u, err := svc.GetMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Test User", u.Name)
	assert.Equal(t, "employee", u.Role)

	again, err := svc.GetMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
}

func TestGetMe_Unauthorized(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetMe(context.Background())
	assert.Equal(t, action.KindUnauthorized, action.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	svc, rec := newService(t)
	_, ctx := testutil.NewUser(t)

	u, err := svc.UpdateProfile(ctx, user.UpdateProfileDTO{
		Name:       strPtr("Ana Souza"),
		Department: strPtr("Engineering"),
		Timezone:   strPtr("Europe/Lisbon"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", u.Name)
	assert.Equal(t, "Engineering", u.Department)
	assert.Equal(t, "Europe/Lisbon", u.Timezone)
	assert.Contains(t, rec.Paths(), cache.PathProfile)
}

func TestUpdateProfile_InvalidTimezone(t *testing.T) {
	svc, rec := newService(t)
	_, ctx := testutil.NewUser(t)

	_, err := svc.UpdateProfile(ctx, user.UpdateProfileDTO{Timezone: strPtr("Nowhere/Land")})
	assert.Equal(t, action.KindValidation, action.KindOf(err))
	assert.Empty(t, rec.Calls())
}
