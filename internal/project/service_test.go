package project_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/project"
	"github.com/saulo-duarte/chronos-workspace/internal/testutil"
)

func newService(t *testing.T) project.ProjectService {
	t.Helper()
	db := testutil.OpenDB(t, &project.Project{})
	return project.NewService(project.NewRepository(db))
}

func TestCreateProject(t *testing.T) {
	svc := newService(t)
	userID, ctx := testutil.NewUser(t)

	p, err := svc.CreateProject(ctx, project.CreateProjectDTO{Name: "Apollo"})
	require.NoError(t, err)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, project.StatusPlanned, p.Status)

	_, err = svc.CreateProject(ctx, project.CreateProjectDTO{})
	assert.Equal(t, action.KindValidation, action.KindOf(err))

	_, err = svc.CreateProject(ctx, project.CreateProjectDTO{Name: "x", Status: "PAUSED"})
	assert.Equal(t, action.KindValidation, action.KindOf(err))

	_, err = svc.CreateProject(context.Background(), project.CreateProjectDTO{Name: "x"})
	assert.Equal(t, action.KindUnauthorized, action.KindOf(err))
}

func TestListProjects_ScopedToCaller(t *testing.T) {
	svc := newService(t)
	_, ctx := testutil.NewUser(t)
	_, otherCtx := testutil.NewUser(t)

	for _, name := range []string{"Zeta", "Alpha"} {
		_, err := svc.CreateProject(ctx, project.CreateProjectDTO{Name: name})
		require.NoError(t, err)
	}
	_, err := svc.CreateProject(otherCtx, project.CreateProjectDTO{Name: "Other"})
	require.NoError(t, err)

	list, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
}

func TestEnsureOwned(t *testing.T) {
	svc := newService(t)
	ownerID, ctx := testutil.NewUser(t)
	otherID, _ := testutil.NewUser(t)

	p, err := svc.CreateProject(ctx, project.CreateProjectDTO{Name: "Apollo"})
	require.NoError(t, err)

	assert.NoError(t, svc.EnsureOwned(ctx, nil, ownerID))
	nilID := uuid.Nil
	assert.NoError(t, svc.EnsureOwned(ctx, &nilID, ownerID))
	assert.NoError(t, svc.EnsureOwned(ctx, &p.ID, ownerID))

	err = svc.EnsureOwned(ctx, &p.ID, otherID)
	assert.Equal(t, action.KindValidation, action.KindOf(err))

	missing := uuid.New()
	assert.ErrorIs(t, svc.EnsureOwned(ctx, &missing, ownerID), project.ErrProjectNotFound)
}

func TestEnsureOwned_ClosedProject(t *testing.T) {
	svc := newService(t)
	ownerID, ctx := testutil.NewUser(t)

	for _, status := range []project.ProjectStatus{project.StatusOnHold, project.StatusCompleted} {
		p, err := svc.CreateProject(ctx, project.CreateProjectDTO{Name: string(status), Status: status})
		require.NoError(t, err)
		assert.ErrorIs(t, svc.EnsureOwned(ctx, &p.ID, ownerID), project.ErrProjectClosed)
	}

	active, err := svc.CreateProject(ctx, project.CreateProjectDTO{Name: "live", Status: project.StatusActive})
	require.NoError(t, err)
	assert.NoError(t, svc.EnsureOwned(ctx, &active.ID, ownerID))
}
