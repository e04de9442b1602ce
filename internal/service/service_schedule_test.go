package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/mock"
	"github.com/MKhiriev/go-plant-keeper/internal/planner"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduleSvc(t *testing.T, ctrl *gomock.Controller) (ScheduleService, *mock.MockScheduleRepository, *mock.MockIDGenerator) {
	t.Helper()
	repo := mock.NewMockScheduleRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	return NewScheduleService(repo, ids, utils.NewFixedClock(testNow), logger.Nop()), repo, ids
}

func TestScheduleService_AddSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, ids := newTestScheduleSvc(t, ctrl)
	ctx := context.Background()

	ids.EXPECT().Generate().Return("s1")
	repo.EXPECT().CreateScheduleEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.ScheduleEntry) (models.ScheduleEntry, error) {
			assert.Equal(t, "s1", e.ID)
			assert.Equal(t, "p1", e.PlantID)
			assert.Equal(t, "Water", e.Activity)
			assert.Equal(t, 7, e.Frequency)
			due, ok := e.NextDue.Resolve(time.UTC)
			require.True(t, ok)
			assert.Equal(t, testNow.AddDate(0, 0, 7), due)
			return e, nil
		},
	)

	got, err := svc.AddSchedule(ctx, "p1", " Water ", " 7 ")

	require.NoError(t, err)
	assert.Equal(t, models.DueDateNative, got.NextDue.Kind())
}

func TestScheduleService_AddSchedule_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		activity  string
		frequency string
		wantErr   error
	}{
		{name: "not a number", activity: "water", frequency: "abc", wantErr: planner.ErrInvalidFrequency},
		{name: "zero", activity: "water", frequency: "0", wantErr: planner.ErrInvalidFrequency},
		{name: "negative", activity: "water", frequency: "-3", wantErr: planner.ErrInvalidFrequency},
		{name: "empty frequency", activity: "water", frequency: "", wantErr: planner.ErrInvalidFrequency},
		{name: "empty activity", activity: "  ", frequency: "3", wantErr: validators.ErrEmptyActivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no repository or id generator calls are expected
			svc, _, _ := newTestScheduleSvc(t, ctrl)

			_, err := svc.AddSchedule(context.Background(), "p1", tt.activity, tt.frequency)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScheduleService_CompleteSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestScheduleSvc(t, ctrl)
	ctx := context.Background()

	entry := models.ScheduleEntry{
		ID:        "s1",
		PlantID:   "p1",
		Activity:  "Water",
		Frequency: 3,
		NextDue:   models.ISODueDate("2024-01-01T08:00:00"),
	}
	want := testNow.AddDate(0, 0, 3)

	gomock.InOrder(
		repo.EXPECT().GetScheduleEntry(ctx, "p1", "s1").Return(entry, nil),
		repo.EXPECT().UpdateNextDue(ctx, "p1", "s1", want).Return(nil),
	)

	got, err := svc.CompleteSchedule(ctx, "p1", "s1")

	require.NoError(t, err)
	due, ok := got.NextDue.Resolve(time.UTC)
	require.True(t, ok)
	assert.Equal(t, want, due)
}

func TestScheduleService_CompleteSchedule_InvalidFrequencyWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestScheduleSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetScheduleEntry(ctx, "p1", "s1").Return(models.ScheduleEntry{ID: "s1", Frequency: 0}, nil)

	_, err := svc.CompleteSchedule(ctx, "p1", "s1")

	assert.ErrorIs(t, err, planner.ErrInvalidFrequency)
}

func TestScheduleService_CompleteSchedule_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestScheduleSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetScheduleEntry(ctx, "p1", "s9").Return(models.ScheduleEntry{}, store.ErrScheduleEntryNotFound)

	_, err := svc.CompleteSchedule(ctx, "p1", "s9")

	assert.ErrorIs(t, err, store.ErrScheduleEntryNotFound)
}

func TestScheduleService_CompleteSchedule_UpdateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestScheduleSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("disk full")

	repo.EXPECT().GetScheduleEntry(ctx, "p1", "s1").Return(models.ScheduleEntry{ID: "s1", Frequency: 1}, nil)
	repo.EXPECT().UpdateNextDue(ctx, "p1", "s1", gomock.Any()).Return(dbErr)

	_, err := svc.CompleteSchedule(ctx, "p1", "s1")

	assert.ErrorIs(t, err, dbErr)
}

func TestScheduleService_DeleteSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestScheduleSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().DeleteScheduleEntry(ctx, "p1", "s1").Return(store.ErrScheduleEntryNotFound)

	assert.ErrorIs(t, svc.DeleteSchedule(ctx, "p1", "s1"), store.ErrScheduleEntryNotFound)
}
