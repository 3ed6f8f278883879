package service

import (
	"context"
	"strings"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// DirectorySearchLimit максимальное число подсказок
const DirectorySearchLimit = 20

// DirectoryService реализует domain.DirectoryService
type DirectoryService struct {
	directory domain.DirectoryRepository
}

// NewDirectoryService создает новый DirectoryService
func NewDirectoryService(directory domain.DirectoryRepository) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// Search подсказывает отделы или должности по части названия
func (s *DirectoryService) Search(ctx context.Context, actor domain.Actor, kind domain.DirectoryKind, query string) ([]domain.DirectoryEntry, error) {
	if err := requireRole(actor, "search directory", domain.StaffRoles...); err != nil {
		return nil, err
	}
	return s.directory.Search(ctx, kind, strings.TrimSpace(query), DirectorySearchLimit)
}
