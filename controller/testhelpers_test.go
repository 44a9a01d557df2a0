package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ThomasMo54/teaching-shop-example/datamanager"
	"github.com/ThomasMo54/teaching-shop-example/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// the in-memory database lives per connection
	sqlDB.SetMaxOpenConns(1)
	return db
}

func setupAdmin(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db := setupDB(t)
	reg, err := models.Admin()
	require.NoError(t, err)
	require.NoError(t, datamanager.FromRegistry(reg).Run(db))
	return New(db, reg).Handler(), db
}

func do(t *testing.T, h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
