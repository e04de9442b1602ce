package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/mock"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestJournalSvc(t *testing.T, ctrl *gomock.Controller) (JournalService, *mock.MockJournalRepository, *mock.MockIDGenerator) {
	t.Helper()
	repo := mock.NewMockJournalRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	return NewJournalService(repo, ids, utils.NewFixedClock(testNow), logger.Nop()), repo, ids
}

func TestJournalService_AddEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, ids := newTestJournalSvc(t, ctrl)
	ctx := context.Background()

	ids.EXPECT().Generate().Return("j1")
	repo.EXPECT().CreateJournalEntry(ctx, models.JournalEntry{
		ID:        "j1",
		PlantID:   "p1",
		CreatedAt: testNow,
		Note:      "repotted",
	}).DoAndReturn(func(_ context.Context, e models.JournalEntry) (models.JournalEntry, error) {
		return e, nil
	})

	got, err := svc.AddEntry(ctx, "p1", "  repotted ")

	require.NoError(t, err)
	assert.Equal(t, "j1", got.ID)
	assert.Equal(t, "repotted", got.Note)
}

func TestJournalService_AddEntry_EmptyNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ids := newTestJournalSvc(t, ctrl)
	ids.EXPECT().Generate().Return("j1")

	_, err := svc.AddEntry(context.Background(), "p1", "   ")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyNote)
}

func TestJournalService_AddEntry_UnknownPlant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, ids := newTestJournalSvc(t, ctrl)
	ctx := context.Background()

	ids.EXPECT().Generate().Return("j1")
	repo.EXPECT().CreateJournalEntry(ctx, gomock.Any()).Return(models.JournalEntry{}, store.ErrPlantNotFound)

	_, err := svc.AddEntry(ctx, "ghost", "note")

	assert.ErrorIs(t, err, store.ErrPlantNotFound)
}

func TestJournalService_UpdateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestJournalSvc(t, ctrl)
	ctx := context.Background()

	stored := models.JournalEntry{ID: "j1", PlantID: "p1", CreatedAt: testNow, Note: "old"}
	gomock.InOrder(
		repo.EXPECT().GetJournalEntry(ctx, "p1", "j1").Return(stored, nil),
		repo.EXPECT().UpdateJournalNote(ctx, "p1", "j1", "new").Return(nil),
	)

	got, err := svc.UpdateNote(ctx, "p1", "j1", "new")

	require.NoError(t, err)
	assert.Equal(t, "new", got.Note)
	assert.Equal(t, testNow, got.CreatedAt, "creation time must not change")
}

func TestJournalService_UpdateNote_EmptyNoteWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestJournalSvc(t, ctrl)

	_, err := svc.UpdateNote(context.Background(), "p1", "j1", "")

	assert.ErrorIs(t, err, validators.ErrEmptyNote)
}

func TestJournalService_UpdateNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestJournalSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetJournalEntry(ctx, "p1", "j9").Return(models.JournalEntry{}, store.ErrJournalEntryNotFound)

	_, err := svc.UpdateNote(ctx, "p1", "j9", "text")

	assert.ErrorIs(t, err, store.ErrJournalEntryNotFound)
}

func TestJournalService_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestJournalSvc(t, ctrl)
	ctx := context.Background()
	delErr := errors.New("locked")

	repo.EXPECT().GetJournalEntry(ctx, "p1", "j1").Return(models.JournalEntry{ID: "j1"}, nil)
	repo.EXPECT().DeleteJournalEntry(ctx, "p1", "j1").Return(delErr)

	got, err := svc.GetEntry(ctx, "p1", "j1")
	require.NoError(t, err)
	assert.Equal(t, "j1", got.ID)

	assert.ErrorIs(t, svc.DeleteEntry(ctx, "p1", "j1"), delErr)
}
