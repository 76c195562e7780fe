package document

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/coop-erp/backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewService(&persistence.Database{DB: db}, store, zap.NewNop())
}

func TestUploadAndDownload(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	content := "akta pendirian koperasi"
	doc, err := svc.Upload(ctx, "akta.pdf", "application/pdf", int64(len(content)),
		strings.NewReader(content), UploadInput{
			DocumentType: "legal",
			Tags:         "legal,founding",
		})
	require.NoError(t, err)
	require.Equal(t, "akta.pdf", doc.Name)
	require.Contains(t, doc.FilePath, "documents/")

	got, rc, err := svc.Download(ctx, doc.ID)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, content, string(data))
	require.Equal(t, doc.ID, got.ID)
}

func TestUploadVersion_IncrementsAndRepoints(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "anggaran.xlsx", "application/vnd.ms-excel", 4,
		strings.NewReader("v1.."), UploadInput{})
	require.NoError(t, err)
	firstPath := doc.FilePath

	v, err := svc.UploadVersion(ctx, doc.ID, "anggaran.xlsx", 6,
		strings.NewReader("v2...."), "revisi kuartal")
	require.NoError(t, err)
	require.Equal(t, 1, v.VersionNumber)

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	require.NotEqual(t, firstPath, got.FilePath)
	require.Equal(t, v.FilePath, got.FilePath)
	require.Len(t, got.Versions, 1)

	v2, err := svc.UploadVersion(ctx, doc.ID, "anggaran.xlsx", 6,
		strings.NewReader("v3...."), "")
	require.NoError(t, err)
	require.Equal(t, 2, v2.VersionNumber)
}

func TestArchive_IsTerminal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "notulen.txt", "text/plain", 5,
		strings.NewReader("rapat"), UploadInput{})
	require.NoError(t, err)

	archived, err := svc.Archive(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, "archived", string(archived.Status))

	_, err = svc.Archive(ctx, doc.ID)
	require.Error(t, err)
}

func TestDelete_RemovesStoredContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "kontrak.pdf", "application/pdf", 8,
		strings.NewReader("kontrak1"), UploadInput{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, doc.ID))

	_, err = svc.Get(ctx, doc.ID)
	require.Error(t, err)

	exists, err := svc.storage.Exists(ctx, doc.FilePath)
	require.NoError(t, err)
	require.False(t, exists)
}
