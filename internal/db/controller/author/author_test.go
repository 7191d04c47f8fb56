package author

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/user135711/Blogifier/internal/db/models"
	"github.com/user135711/Blogifier/internal/pager"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Author{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedAuthor(t *testing.T, c *Controller, userName string, isAdmin bool) *models.Author {
	t.Helper()

	a, err := c.Create(context.Background(), userName, "Name "+userName, userName+"@example.com", "secret123", isAdmin)
	require.NoError(t, err)

	return a
}

func TestGetByUserNameAndID(t *testing.T) {
	ctx := context.Background()
	c := New(setupTestDB(t), 0)
	admin := seedAuthor(t, c, "admin", true)

	got, err := c.GetByUserName(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.True(t, got.IsAdmin)
	assert.False(t, got.Created.IsZero())

	got, err = c.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.UserName)

	_, err = c.GetByUserName(ctx, "nobody")
	require.ErrorIs(t, err, ErrAuthorNotFound)

	_, err = c.GetByID(ctx, 4711)
	require.ErrorIs(t, err, ErrAuthorNotFound)

	_, err = New(nil, 0).GetByID(ctx, 1)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	c := New(setupTestDB(t), 8)

	_, err := c.Create(ctx, "short", "Short", "short@example.com", "1234567", false)
	require.ErrorIs(t, err, ErrPasswordPolicy)

	a, err := c.Create(ctx, "writer", "Writer", "writer@example.com", "12345678", false)
	require.NoError(t, err)
	assert.NotEqual(t, "12345678", a.Password)
	assert.True(t, a.VerifyPassword("12345678"))

	_, err = c.Create(ctx, "writer", "Other", "other@example.com", "12345678", false)
	require.ErrorIs(t, err, ErrUserNameOrEmailExists)

	_, err = c.Create(ctx, "other", "Other", "writer@example.com", "12345678", false)
	require.ErrorIs(t, err, ErrUserNameOrEmailExists)

	total, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestGetItems(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	c := New(db, 0)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		a := seedAuthor(t, c, fmt.Sprintf("author%d", i), false)
		require.NoError(t, db.Model(a).Update("created", base.Add(time.Duration(i)*time.Hour)).Error)
	}

	p := pager.New(1, 2)
	items, err := c.GetItems(ctx, time.Time{}, p)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "author4", items[0].UserName)
	assert.Equal(t, "author3", items[1].UserName)
	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 3, p.LastPage)
	assert.True(t, p.ShowOlder)
	assert.False(t, p.ShowNewer)

	p = pager.New(3, 2)
	items, err = c.GetItems(ctx, time.Time{}, p)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "author0", items[0].UserName)
	assert.True(t, p.ShowNewer)
	assert.False(t, p.ShowOlder)

	p = pager.New(1, 10)
	items, err = c.GetItems(ctx, base.Add(2*time.Hour), p)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, p.Total)
}

func TestSaveUser(t *testing.T) {
	ctx := context.Background()
	c := New(setupTestDB(t), 0)
	writer := seedAuthor(t, c, "writer", false)
	seedAuthor(t, c, "editor", false)

	testCases := []struct {
		name        string
		displayName string
		email       string
		wantCode    string
	}{
		{
			name:        "empty display name",
			displayName: "  ",
			email:       "writer@example.com",
			wantCode:    CodeInvalidDisplayName,
		},
		{
			name:        "invalid email",
			displayName: "Writer",
			email:       "not-an-email",
			wantCode:    CodeInvalidEmail,
		},
		{
			name:        "duplicate email",
			displayName: "Writer",
			email:       "editor@example.com",
			wantCode:    CodeDuplicateEmail,
		},
		{
			name:        "success keeps own email",
			displayName: "The Writer",
			email:       "writer@example.com",
		},
		{
			name:        "success new email",
			displayName: "The Writer",
			email:       "new@example.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := c.GetByID(ctx, writer.ID)
			require.NoError(t, err)

			a.DisplayName = tc.displayName
			a.Email = tc.email

			res := c.SaveUser(ctx, a)
			if tc.wantCode != "" {
				require.False(t, res.Succeeded)
				require.NotEmpty(t, res.Errors)
				assert.Equal(t, tc.wantCode, res.Errors[0].Code)
				assert.Equal(t, res.Errors[0].Description, res.FirstError())

				return
			}

			require.True(t, res.Succeeded, res.FirstError())

			stored, err := c.GetByID(ctx, writer.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.displayName, stored.DisplayName)
			assert.Equal(t, tc.email, stored.Email)
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	c := New(setupTestDB(t), 0)
	seedAuthor(t, c, "writer", false)

	err := c.ChangePassword(ctx, PasswordChange{UserName: "nobody", OldPassword: "secret123", NewPassword: "newsecret"})
	require.ErrorIs(t, err, ErrAuthorNotFound)

	err = c.ChangePassword(ctx, PasswordChange{UserName: "writer", OldPassword: "wrong", NewPassword: "newsecret"})
	require.ErrorIs(t, err, ErrInvalidCurrentPassword)

	err = c.ChangePassword(ctx, PasswordChange{UserName: "writer", OldPassword: "secret123", NewPassword: "abc"})
	require.ErrorIs(t, err, ErrPasswordPolicy)

	err = c.ChangePassword(ctx, PasswordChange{UserName: "writer", OldPassword: "secret123", NewPassword: "newsecret"})
	require.NoError(t, err)

	a, err := c.GetByUserName(ctx, "writer")
	require.NoError(t, err)
	assert.True(t, a.VerifyPassword("newsecret"))
	assert.False(t, a.VerifyPassword("secret123"))
}
