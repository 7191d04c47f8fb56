package daemon

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/user135711/Blogifier/internal/config"
	"github.com/user135711/Blogifier/internal/db/controller/author"
	"github.com/user135711/Blogifier/internal/db/controller/setting"
	"github.com/user135711/Blogifier/internal/web/session"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Title: "Blogifier",
		DB: config.DB{
			GormEngine: config.GormEngineSQLite,
			Path:       filepath.Join(t.TempDir(), "blogifier.db"),
			LogLevel:   "silent",
		},
		Webserver: config.Webserver{
			Port:         8080,
			ShutDownTime: 1,
			LoginURL:     "/error/401",
			Session:      config.Session{ExpiryTime: time.Hour},
		},
		Blog: config.Blog{
			ThemesDir:         t.TempDir(),
			MinPasswordLength: 6,
			RefreshSchedule:   "@every 1h",
			SeedAdminUser:     "admin",
			SeedAdminPassword: "changeme",
			SeedAdminEmail:    "admin@example.com",
			Defaults: config.Defaults{
				Title:        "Blog Title",
				Description:  "Short description",
				Theme:        "Simple",
				ItemsPerPage: 10,
				PostListType: "Blog",
			},
		},
	}
}

func TestNew(t *testing.T) {
	cfg := testConfig(t)

	d, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, d.refresh)

	t.Cleanup(func() { _ = d.Close() })

	body := adminSettingsPage(t, d)
	assert.Contains(t, body, `value="Blog Title"`)
	assert.Contains(t, body, `value="10"`)

	admin, err := author.New(d.db, 6).GetByUserName(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.VerifyPassword("changeme"))
}

func TestNew_StoredSettingsWin(t *testing.T) {
	cfg := testConfig(t)
	cfg.Blog.RefreshSchedule = ""

	db, err := openDB(cfg)
	require.NoError(t, err)
	require.NoError(t, setting.Set(db, "app-items-per-page", "25"))

	d, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	assert.Nil(t, d.refresh)
	assert.Contains(t, adminSettingsPage(t, d), `value="25"`)
}

func TestClose(t *testing.T) {
	d, err := New(testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, d.refresh)

	require.NoError(t, d.Close())

	sqlDB, err := d.db.DB()
	require.NoError(t, err)
	require.Error(t, sqlDB.Ping(), "connections are closed")
}

// adminSettingsPage renders the settings page with a session of the seeded admin.
func adminSettingsPage(t *testing.T, d *Daemon) string {
	t.Helper()

	id, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, (&session.Data{UserName: "admin"}).Write(id, time.Hour))

	req := httptest.NewRequest(fiber.MethodGet, "/settings", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})

	resp, err := d.webService.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, config.ErrConfigNil)

	cfg := testConfig(t)
	cfg.DB.GormEngine = "oracle"

	_, err = New(cfg)
	require.ErrorIs(t, err, config.ErrUnknownGormEngine)

	cfg = testConfig(t)
	cfg.Blog.RefreshSchedule = "every now and then"

	_, err = New(cfg)
	require.Error(t, err)
}

func TestSeed(t *testing.T) {
	cfg := testConfig(t)

	db, err := openDB(cfg)
	require.NoError(t, err)

	authors := author.New(db, 6)
	ctx := context.Background()

	require.NoError(t, seed(ctx, cfg, authors))
	require.NoError(t, seed(ctx, cfg, authors))

	count, err := authors.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	cfg.Blog.SeedAdminUser = ""
	require.NoError(t, seed(ctx, cfg, authors))

	short := testConfig(t)
	short.Blog.SeedAdminPassword = "abc"

	db, err = openDB(short)
	require.NoError(t, err)
	require.ErrorIs(t, seed(ctx, short, author.New(db, 6)), author.ErrPasswordPolicy)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, gormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, gormLogLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, gormLogLevel("info"))
	assert.Equal(t, gormlogger.Warn, gormLogLevel(""))
}

func TestSessionStorage_SQLite(t *testing.T) {
	assert.Nil(t, sessionStorage(testConfig(t)))
}
