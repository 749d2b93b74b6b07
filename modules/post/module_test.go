package post

import (
	"context"
	"testing"
	"time"

	domain "github.com/example/jwt-posts-demo/domain/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModule(t *testing.T) *PostModule {
	t.Helper()
	m := NewModuleWithDB(setupTestDB(t))
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(func() { _ = m.Stop(context.Background()) })
	return m
}

func TestPostModule_CreateAndList(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	assert.Equal(t, "post", m.Name())
	assert.True(t, m.Health(ctx).Healthy)

	older := time.Now().Add(-time.Hour)
	_, err := m.createPost(ctx, CreatePostRequest{UserID: "u1", Title: "first", Content: "a", CreatedAt: older}, nil)
	require.NoError(t, err)

	created, err := m.createPost(ctx, CreatePostRequest{UserID: "u1", Title: "second", Content: "b"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)

	list, err := m.listByUser(ctx, ListByUserRequest{UserID: "u1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Posts, 2)
	assert.Equal(t, "second", list.Posts[0].Title)
	assert.Equal(t, "first", list.Posts[1].Title)

	empty, err := m.listByUser(ctx, ListByUserRequest{UserID: "nobody"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.NotNil(t, empty.Posts)
}

func TestPostModule_CreateValidation(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	tests := []struct {
		name    string
		req     CreatePostRequest
		wantErr error
	}{
		{name: "missing user", req: CreatePostRequest{Title: "t", Content: "c"}},
		{name: "blank title", req: CreatePostRequest{UserID: "u1", Title: "  ", Content: "c"}, wantErr: domain.ErrTitleRequired},
		{name: "blank content", req: CreatePostRequest{UserID: "u1", Title: "t"}, wantErr: domain.ErrContentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.createPost(ctx, tt.req, nil)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	_, err := m.listByUser(ctx, ListByUserRequest{}, nil)
	assert.Error(t, err)
}
