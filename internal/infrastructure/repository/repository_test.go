package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/govseva/govseva/internal/domain"
	"github.com/govseva/govseva/internal/infrastructure/persistence"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := persistence.Open(":memory:")
	require.NoError(t, err)
	return db
}

func TestChatRepository_HistoryOrderedByInsertion(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.Append(ctx, &domain.ChatTurn{
			SessionID:   "s1",
			UserMessage: fmt.Sprintf("question %d", i),
			BotMessage:  fmt.Sprintf("answer %d", i),
			SourceLang:  "en",
			TargetLang:  "en",
		})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Append(ctx, &domain.ChatTurn{SessionID: "s2", UserMessage: "other"}))

	turns, err := repo.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 3)
	for i, turn := range turns {
		require.Equal(t, fmt.Sprintf("question %d", i+1), turn.UserMessage)
	}
}

func TestChatRepository_HistoryUnknownSessionIsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)

	turns, err := repo.History(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, turns)
}

func TestServiceRepository_SeededDepartments(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	services, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 6)

	for _, id := range []string{"revenue", "municipal", "health", "education", "social_welfare", "agriculture"} {
		exists, err := repo.Exists(ctx, id)
		require.NoError(t, err)
		require.True(t, exists, "service %q must be seeded", id)
	}

	exists, err := repo.Exists(ctx, "space_program")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestSeedServices_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, persistence.SeedServices(db))
	require.NoError(t, persistence.SeedServices(db))

	services, err := NewServiceRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 6)
}

func TestComplaintRepository_GetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewComplaintRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.ErrorIs(t, err, domain.ErrComplaintNotFound)
}

func TestApplicationRepository_ListWithFilesCapAndFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		email := "a@example.com"
		if i%2 == 1 {
			email = "b@example.com"
		}
		err := repo.Create(ctx, &domain.Application{
			ServiceID:    "health",
			Name:         "Asha",
			Email:        email,
			Purpose:      "certificate",
			TicketNumber: domain.NewTicketNumber(),
			FileName:     fmt.Sprintf("doc%d.pdf", i),
			FileData:     []byte("bytes"),
		})
		require.NoError(t, err)
	}
	// one record without a document must never appear
	require.NoError(t, repo.Create(ctx, &domain.Application{
		ServiceID:    "health",
		Name:         "Asha",
		Email:        "a@example.com",
		Purpose:      "certificate",
		TicketNumber: domain.NewTicketNumber(),
	}))

	all, err := repo.ListWithFiles(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 5)

	capped, err := repo.ListWithFiles(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, capped, 2)

	filtered, err := repo.ListWithFiles(ctx, "b@example.com", 0)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, a := range filtered {
		require.Equal(t, "b@example.com", a.Email)
	}
}

func TestApplicationRepository_UpdateStatusUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)

	require.NoError(t, repo.UpdateStatus(context.Background(), 999, "approved"))
}

func TestApplicationRepository_DefaultsStatusToSubmitted(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := &domain.Application{
		ServiceID:    "revenue",
		Name:         "Ravi",
		Email:        "ravi@example.com",
		Purpose:      "income certificate",
		TicketNumber: domain.NewTicketNumber(),
	}
	require.NoError(t, repo.Create(ctx, app))

	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusSubmitted, got.Status)
}
