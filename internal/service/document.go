package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"hrapi/internal/model"
	"hrapi/internal/repository"
	"hrapi/internal/storage"
)

// MaxUploadBytes is the hard ceiling on one document payload. Enforced here
// authoritatively; clients may pre-check but cannot be trusted to.
const MaxUploadBytes = 5 * 1024 * 1024

// UploadResult describes one successful upload. Src is the stable reference
// persisted into the relational layer ("<employeeId>/<filename>").
type UploadResult struct {
	Src      string               `json:"src"`
	Filename string               `json:"filename"`
	Format   model.DocumentFormat `json:"format"`
}

// DocumentView pairs a stored pointer with its public download URL.
type DocumentView struct {
	model.EmployeeDocument
	URL string `json:"url"`
}

// DocumentService owns the document naming/upload protocol and the relational
// document pointers. The remote file and the pointer row are two independent
// resources: uploading does not write the database, and detaching a pointer
// does not delete remote bytes.
type DocumentService interface {
	// Upload stores data under the employee's folder, choosing a collision-free
	// filename derived from documentName, and returns the stored reference.
	Upload(ctx context.Context, employeeID, documentName, originalFilename string, data []byte) (*UploadResult, error)

	// Delete removes the remote file <employeeFolder>/<filename>.
	Delete(ctx context.Context, employeeID, filename string) error

	// Attach persists a document pointer row for an already-uploaded file.
	Attach(ctx context.Context, employeeID, name, src string, format model.DocumentFormat) (*model.EmployeeDocument, error)

	// ListByEmployee returns the employee's document pointers with their
	// public URLs.
	ListByEmployee(ctx context.Context, employeeID string) ([]DocumentView, error)

	// Detach removes a document pointer row. The remote file is untouched.
	Detach(ctx context.Context, id string) error
}

type documentService struct {
	store         storage.Store
	paths         storage.Paths
	repo          repository.DocumentRepository
	publicBaseURL string
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Store, paths storage.Paths, repo repository.DocumentRepository, publicBaseURL string) DocumentService {
	return &documentService{
		store:         store,
		paths:         paths,
		repo:          repo,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	disallowedRe = regexp.MustCompile(`[^a-z0-9\-_]`)
)

// sanitizeBaseName reduces a human-readable document name to a safe filename
// base: lowercase, whitespace collapsed to single hyphens, everything outside
// [a-z0-9-_] stripped.
func sanitizeBaseName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRe.ReplaceAllString(s, "-")
	return disallowedRe.ReplaceAllString(s, "")
}

// nextFreeFilename picks base.ext if unused, otherwise base1.ext, base2.ext,
// ... against the given listing. The listing is a point-in-time snapshot, not
// a reservation: two concurrent uploads can both observe the same free name
// and the later write wins. That matches the behavior callers rely on; do not
// add locking here without changing the documented contract.
func nextFreeFilename(existing []string, base string, ext model.DocumentFormat) string {
	taken := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		taken[n] = struct{}{}
	}
	candidate := fmt.Sprintf("%s.%s", base, ext)
	if _, ok := taken[candidate]; !ok {
		return candidate
	}
	for i := 1; ; i++ {
		candidate = fmt.Sprintf("%s%d.%s", base, i, ext)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

func (s *documentService) Upload(ctx context.Context, employeeID, documentName, originalFilename string, data []byte) (*UploadResult, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeId", ErrMissingParameter)
	}
	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("%w: max %d MB", ErrPayloadTooLarge, MaxUploadBytes/(1024*1024))
	}
	format, ok := model.ParseFormat(model.ExtractExt(originalFilename))
	if !ok {
		return nil, fmt.Errorf("%w: allowed: %s", ErrInvalidFormat, model.AcceptedFormatList())
	}

	base := sanitizeBaseName(documentName)
	if base == "" {
		base = "document"
	}

	folder := s.paths.EmployeeFolder(employeeID)
	if err := s.store.EnsureDir(ctx, folder); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	existing, err := s.store.ListFiles(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	filename := nextFreeFilename(existing, base, format)
	if err := s.store.Upload(ctx, s.paths.EmployeeFilePath(employeeID, filename), bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &UploadResult{
		Src:      model.DocumentRef(employeeID, filename),
		Filename: filename,
		Format:   format,
	}, nil
}

func (s *documentService) Delete(ctx context.Context, employeeID, filename string) error {
	if employeeID == "" || filename == "" {
		return fmt.Errorf("%w: employeeId and filename", ErrMissingParameter)
	}
	if err := s.store.Delete(ctx, s.paths.EmployeeFilePath(employeeID, filename)); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

func (s *documentService) Attach(ctx context.Context, employeeID, name, src string, format model.DocumentFormat) (*model.EmployeeDocument, error) {
	if employeeID == "" || src == "" {
		return nil, fmt.Errorf("%w: employeeId and src", ErrMissingParameter)
	}
	if _, ok := model.ParseFormat(string(format)); !ok {
		return nil, fmt.Errorf("%w: allowed: %s", ErrInvalidFormat, model.AcceptedFormatList())
	}
	doc := &model.EmployeeDocument{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Name:       name,
		Src:        src,
		Format:     format,
	}
	return s.repo.Create(ctx, doc)
}

func (s *documentService) ListByEmployee(ctx context.Context, employeeID string) ([]DocumentView, error) {
	if employeeID == "" {
		return nil, ErrIDRequired
	}
	docs, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	views := make([]DocumentView, len(docs))
	for i, d := range docs {
		views[i] = DocumentView{EmployeeDocument: d, URL: s.publicURL(d.Src)}
	}
	return views, nil
}

func (s *documentService) Detach(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// publicURL prefixes the configured base URL onto a stored reference.
func (s *documentService) publicURL(src string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(src, "/")
}
