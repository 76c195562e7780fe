package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	_, err := NewDocument("", "docs/akta.pdf", "application/pdf", "legal", 1024)
	assert.Error(t, err)

	_, err = NewDocument("Akta pendirian", "", "application/pdf", "legal", 1024)
	assert.Error(t, err)

	_, err = NewDocument("Akta pendirian", "docs/akta.pdf", "application/pdf", "legal", -1)
	assert.Error(t, err)

	doc, err := NewDocument("Akta pendirian", "docs/akta.pdf", "application/pdf", "legal", 1024)
	require.NoError(t, err)
	assert.Equal(t, DocumentStatusActive, doc.Status)
	assert.False(t, doc.UploadDate.IsZero())
}

func TestDocument_AddVersion(t *testing.T) {
	doc, err := NewDocument("Kontrak sewa", "docs/kontrak.pdf", "application/pdf", "contract", 2048)
	require.NoError(t, err)

	v1, err := doc.AddVersion("docs/kontrak_v1.pdf", 2048, "")
	require.NoError(t, err)
	assert.Equal(t, 1, v1.VersionNumber)

	v2, err := doc.AddVersion("docs/kontrak_v2.pdf", 3000, "revisi harga")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.VersionNumber)
	assert.Len(t, doc.Versions, 2)

	_, err = doc.AddVersion("", 100, "")
	assert.Error(t, err)
}

func TestDocument_Archive(t *testing.T) {
	doc, err := NewDocument("Laporan RAT", "docs/rat.pdf", "application/pdf", "report", 512)
	require.NoError(t, err)

	require.NoError(t, doc.Archive())
	assert.Equal(t, DocumentStatusArchived, doc.Status)
	assert.Error(t, doc.Archive())
}
