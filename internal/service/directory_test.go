package service

import (
	"context"
	"testing"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	domainmocks "github.com/lokomotiv/rink-ticketing/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_Search(t *testing.T) {
	t.Run("Trims query", func(t *testing.T) {
		directory := domainmocks.NewDirectoryRepositoryMock(t)
		svc := NewDirectoryService(directory)

		directory.EXPECT().Search(mock.Anything, domain.DirectoryDepartment, "бух", DirectorySearchLimit).
			Return([]domain.DirectoryEntry{{ID: 7, Name: "Бухгалтерия"}}, nil).Once()

		entries, err := svc.Search(context.Background(), cashierActor, domain.DirectoryDepartment, "  бух ")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Бухгалтерия", entries[0].Name)
	})

	t.Run("Client cannot search", func(t *testing.T) {
		svc := NewDirectoryService(domainmocks.NewDirectoryRepositoryMock(t))

		_, err := svc.Search(context.Background(), clientActor, domain.DirectoryPosition, "инж")
		assert.ErrorIs(t, err, domain.ErrPermission)
	})
}
