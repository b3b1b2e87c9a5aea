package cli

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pmarquez/stockbook/internal/backup"
	"github.com/pmarquez/stockbook/internal/inventory"
	"github.com/pmarquez/stockbook/pkg/db/models"
	"github.com/pmarquez/stockbook/pkg/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 7, 4, 16, 30, 0, 0, time.UTC)

type testSession struct {
	*Session
	out        *bytes.Buffer
	repo       *inventory.Repository
	backupPath string
}

func newTestSession(t *testing.T, input string) *testSession {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Product{}))

	repo := inventory.NewRepository(conn)
	logg := logger.New(logger.Options{ServiceName: "test", Format: "json", Output: io.Discard})
	backupPath := filepath.Join(t.TempDir(), "backup_inventory.csv")
	out := &bytes.Buffer{}

	session := NewSession(strings.NewReader(input), out, repo, backup.NewExporter(repo, logg), backupPath, logg)
	session.now = func() time.Time { return fixedNow }

	return &testSession{Session: session, out: out, repo: repo, backupPath: backupPath}
}

// newScanner lets a test swap in fresh scripted input after seeding data.
func newScanner(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}
