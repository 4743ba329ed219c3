package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"invoicepress/internal/caching"
	"invoicepress/internal/models"
	"invoicepress/internal/render"
)

// ErrInvalidSnapshot marks generation failures caused by a snapshot
// that violates its monetary or identity invariants.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// maxNameVersions caps the collision loop for versioned file names.
const maxNameVersions = 1000

// GenerateRequest describes one document generation call.
type GenerateRequest struct {
	Snapshot     models.InvoiceSnapshot
	Template     *models.TemplateSnapshot
	CustomFields []models.CustomField

	// Store uploads the document to object storage and returns a
	// locator; otherwise the PDF bytes are returned inline.
	Store bool
	// Overwrite replaces an existing document with the same name.
	// When false, a _v{N} suffix is appended until the name is free.
	Overwrite bool
}

// DocumentService orchestrates rendering, storage and the locator cache.
type DocumentService interface {
	GenerateDocument(ctx context.Context, req GenerateRequest) (*models.GeneratedDocument, error)
}

type documentService struct {
	assembler *render.Assembler
	storage   StorageService
	cache     caching.CacheService
	bucket    string
	urlExpiry time.Duration
}

// NewDocumentService creates a document service. storage and cache may
// be nil for render-only deployments; Store requests then fail.
func NewDocumentService(assembler *render.Assembler, storage StorageService, cache caching.CacheService, bucket string) DocumentService {
	return &documentService{
		assembler: assembler,
		storage:   storage,
		cache:     cache,
		bucket:    bucket,
		urlExpiry: 24 * time.Hour,
	}
}

func (s *documentService) GenerateDocument(ctx context.Context, req GenerateRequest) (*models.GeneratedDocument, error) {
	if err := req.Snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	// Rendering is deterministic, so a previously stored document for
	// the exact same input can be reused as-is.
	key := contentKey(req)
	if req.Store && !req.Overwrite && s.cache != nil {
		if doc, ok := s.cachedDocument(ctx, key); ok {
			return doc, nil
		}
	}

	doc, err := s.assembler.Assemble(req.Snapshot, req.Template, req.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("generate document: %w", err)
	}

	generated := &models.GeneratedDocument{
		FileName:    doc.FileName,
		PageCount:   doc.PageCount,
		GeneratedAt: time.Now().UTC(),
	}

	if !req.Store {
		generated.Content = doc.Bytes()
		return generated, nil
	}
	if s.storage == nil {
		return nil, fmt.Errorf("document storage is not configured")
	}

	if err := s.storage.EnsureBucketExists(ctx, s.bucket); err != nil {
		return nil, fmt.Errorf("ensure bucket %q: %w", s.bucket, err)
	}

	objectName := doc.FileName
	if !req.Overwrite {
		objectName, err = s.resolveFreeName(ctx, doc.FileName)
		if err != nil {
			return nil, err
		}
	}

	data := doc.Bytes()
	if err := s.storage.UploadDocument(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, fmt.Errorf("upload document %q: %w", objectName, err)
	}

	locator := &models.DocumentLocator{
		Bucket:     s.bucket,
		ObjectName: objectName,
		FileName:   objectName,
		PageCount:  doc.PageCount,
		StoredAt:   generated.GeneratedAt,
	}
	generated.FileName = objectName
	generated.Locator = locator

	if url, err := s.storage.GetPresignedURL(s.bucket, objectName, s.urlExpiry); err != nil {
		log.Printf("WARN: failed to presign URL for %s/%s: %v", s.bucket, objectName, err)
	} else {
		generated.URL = url
	}

	if s.cache != nil {
		if err := s.cache.SetDocumentLocator(ctx, key, locator, s.urlExpiry); err != nil {
			log.Printf("WARN: failed to cache document locator: %v", err)
		}
	}

	return generated, nil
}

// resolveFreeName appends _v{N} until the name does not collide with an
// existing object.
func (s *documentService) resolveFreeName(ctx context.Context, base string) (string, error) {
	name := base
	for version := 1; version <= maxNameVersions; version++ {
		exists, err := s.storage.DocumentExists(ctx, s.bucket, name)
		if err != nil {
			return "", fmt.Errorf("check name %q: %w", name, err)
		}
		if !exists {
			return name, nil
		}
		name = render.VersionedFileName(base, version)
	}
	return "", fmt.Errorf("no free name for %q after %d versions", base, maxNameVersions)
}

// cachedDocument returns a stored document for this exact input if the
// cache knows one and the object still exists.
func (s *documentService) cachedDocument(ctx context.Context, key string) (*models.GeneratedDocument, bool) {
	locator, err := s.cache.GetDocumentLocator(ctx, key)
	if err != nil {
		log.Printf("WARN: document locator cache lookup failed: %v", err)
		return nil, false
	}
	if locator == nil {
		return nil, false
	}
	exists, err := s.storage.DocumentExists(ctx, locator.Bucket, locator.ObjectName)
	if err != nil || !exists {
		return nil, false
	}

	doc := &models.GeneratedDocument{
		FileName:    locator.FileName,
		PageCount:   locator.PageCount,
		GeneratedAt: locator.StoredAt,
		Locator:     locator,
	}
	if url, err := s.storage.GetPresignedURL(locator.Bucket, locator.ObjectName, s.urlExpiry); err == nil {
		doc.URL = url
	}
	return doc, true
}

// contentKey hashes the render-relevant input so identical requests map
// to the same cache entry.
func contentKey(req GenerateRequest) string {
	payload := struct {
		Snapshot     models.InvoiceSnapshot   `json:"snapshot"`
		Template     *models.TemplateSnapshot `json:"template"`
		CustomFields []models.CustomField     `json:"custom_fields"`
	}{req.Snapshot, req.Template, req.CustomFields}

	data, err := json.Marshal(payload)
	if err != nil {
		// Snapshot types marshal cleanly; this indicates a programming error.
		panic(fmt.Sprintf("services: marshal content key: %v", err))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
