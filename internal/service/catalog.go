package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"

	"github.com/packwise/boxfit-service/internal/domain/model"
	"github.com/packwise/boxfit-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// CatalogService provides box catalog operations.
type CatalogService interface {
	GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error)
	Create(ctx context.Context, boxes []model.BoxSpec, createdBy string) (*repository.BoxCatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, boxes []model.BoxSpec, updatedBy string) (*repository.BoxCatalogConfig, error)
	List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error)
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	catalogRepo repository.BoxCatalogRepositoryInterface
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.BoxCatalogRepositoryInterface) CatalogService {
	if catalogRepo == nil {
		return &CatalogServiceImpl{}
	}
	return &CatalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

func (s *CatalogServiceImpl) GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.GetActive(ctx)
}

func (s *CatalogServiceImpl) Create(ctx context.Context, boxes []model.BoxSpec, createdBy string) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.Create(ctx, boxes, createdBy)
}

func (s *CatalogServiceImpl) Update(ctx context.Context, id primitive.ObjectID, boxes []model.BoxSpec, updatedBy string) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.Update(ctx, id, boxes, updatedBy)
}

func (s *CatalogServiceImpl) List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.List(ctx, limit)
}

// catalogFile is the YAML layout of an on-disk box catalog.
type catalogFile struct {
	Boxes []model.BoxSpec `yaml:"boxes"`
}

// LoadCatalogFile reads a YAML box catalog from disk and validates every
// entry. It is used to seed the catalog on startup.
func LoadCatalogFile(path string) ([]model.BoxSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(file.Boxes) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no boxes", path)
	}

	for _, spec := range file.Boxes {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", path, err)
		}
	}
	return file.Boxes, nil
}
