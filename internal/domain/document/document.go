package document

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentStatus is the archival status of a document
type DocumentStatus string

const (
	DocumentStatusActive   DocumentStatus = "active"
	DocumentStatusArchived DocumentStatus = "archived"
)

// IsValid checks if the status is a valid DocumentStatus
func (s DocumentStatus) IsValid() bool {
	return s == DocumentStatusActive || s == DocumentStatusArchived
}

// Document is an uploaded file with business metadata. The file content
// itself lives in object or disk storage; only the path is stored here.
type Document struct {
	shared.BaseEntity
	Name              string         `json:"name" gorm:"size:255;not null"`
	FilePath          string         `json:"file_path" gorm:"size:500;not null"`
	FileSize          int64          `json:"file_size" gorm:"default:0"`
	ContentType       string         `json:"content_type" gorm:"size:100"`
	DocumentType      string         `json:"document_type" gorm:"size:100"`
	UploadDate        time.Time      `json:"upload_date" gorm:"not null"`
	Status            DocumentStatus `json:"status" gorm:"size:50;default:'active'"`
	RelatedEntityType string         `json:"related_entity_type" gorm:"size:100"`
	RelatedEntityID   *uuid.UUID     `json:"related_entity_id" gorm:"type:uuid"`
	Description       string         `json:"description" gorm:"type:text"`
	Tags              string         `json:"tags" gorm:"size:500"`
	ExpiryDate        *time.Time     `json:"expiry_date"`

	Versions []DocumentVersion `json:"versions,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// DocumentVersion is one stored revision of a document
type DocumentVersion struct {
	shared.BaseEntity
	DocumentID    uuid.UUID `json:"document_id" gorm:"type:uuid;index;not null"`
	VersionNumber int       `json:"version_number" gorm:"not null"`
	FilePath      string    `json:"file_path" gorm:"size:500;not null"`
	FileSize      int64     `json:"file_size" gorm:"default:0"`
	UploadDate    time.Time `json:"upload_date" gorm:"not null"`
	Notes         string    `json:"notes" gorm:"type:text"`
}

// NewDocument registers an uploaded file
func NewDocument(name, filePath, contentType, documentType string, fileSize int64) (*Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Document name cannot be empty")
	}
	if strings.TrimSpace(filePath) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Document file path cannot be empty")
	}
	if fileSize < 0 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "File size cannot be negative")
	}
	return &Document{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		FilePath:     filePath,
		FileSize:     fileSize,
		ContentType:  contentType,
		DocumentType: documentType,
		UploadDate:   time.Now(),
		Status:       DocumentStatusActive,
	}, nil
}

// AddVersion registers a new stored revision numbered after the latest one
func (doc *Document) AddVersion(filePath string, fileSize int64, notes string) (*DocumentVersion, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Version file path cannot be empty")
	}
	if fileSize < 0 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "File size cannot be negative")
	}
	next := 1
	for _, v := range doc.Versions {
		if v.VersionNumber >= next {
			next = v.VersionNumber + 1
		}
	}
	version := &DocumentVersion{
		BaseEntity:    shared.NewBaseEntity(),
		DocumentID:    doc.ID,
		VersionNumber: next,
		FilePath:      filePath,
		FileSize:      fileSize,
		UploadDate:    time.Now(),
		Notes:         notes,
	}
	doc.Versions = append(doc.Versions, *version)
	doc.Touch()
	return version, nil
}

// Archive marks the document archived
func (doc *Document) Archive() error {
	if doc.Status == DocumentStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Document is already archived")
	}
	doc.Status = DocumentStatusArchived
	doc.Touch()
	return nil
}
