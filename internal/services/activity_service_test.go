package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
)

func TestAppend_AssignsID(t *testing.T) {
	activityRepo := &fakeActivityRepo{}
	svc := NewActivityService(activityRepo, GetLocale("fr"))

	id, err := svc.Append(context.Background(), &models.Activity{
		FarmID: uuid.New(),
		Type:   models.ActivityIrrigation,
		Title:  "Irrigation started",
		Status: models.StatusInfo,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Len(t, activityRepo.created, 1)
}

func TestRecentViews_SubjectFallback(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	plant := "Tomates"
	ghName := "Serre Nord"

	withPlant := models.ActivityWithGreenhouse{
		Activity: models.Activity{
			ID:        uuid.New(),
			Title:     "Harvest done",
			Plant:     &plant,
			Status:    models.StatusSuccess,
			CreatedAt: now.Add(-10 * time.Minute),
		},
		GreenhouseName: &ghName,
	}
	withGreenhouse := models.ActivityWithGreenhouse{
		Activity: models.Activity{
			ID:        uuid.New(),
			Title:     "Sensor Alert",
			Status:    models.StatusWarning,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		GreenhouseName: &ghName,
	}
	withNeither := models.ActivityWithGreenhouse{
		Activity: models.Activity{
			ID:        uuid.New(),
			Title:     "Irrigation started",
			Status:    models.StatusInfo,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}

	activityRepo := &fakeActivityRepo{
		recent: []models.ActivityWithGreenhouse{withPlant, withGreenhouse, withNeither},
	}
	svc := NewActivityService(activityRepo, GetLocale("fr"))

	views, err := svc.RecentViews(context.Background(), uuid.New(), 10, now)

	assert.NoError(t, err)
	assert.Len(t, views, 3)

	assert.Equal(t, "Tomates", views[0].Plant, "the plant field wins when set")
	assert.Equal(t, "10 min ago", views[0].Time)

	assert.Equal(t, "Serre Nord", views[1].Plant, "greenhouse name is the second choice")
	assert.Equal(t, "2 h ago", views[1].Time)

	assert.Equal(t, "General", views[2].Plant, "General when neither is set")
	assert.Equal(t, "Hier", views[2].Time)
}

func TestRecentViews_RespectsLimit(t *testing.T) {
	now := time.Now()
	var recent []models.ActivityWithGreenhouse
	for i := 0; i < 15; i++ {
		recent = append(recent, models.ActivityWithGreenhouse{
			Activity: models.Activity{
				ID:        uuid.New(),
				Title:     "Event",
				Status:    models.StatusInfo,
				CreatedAt: now,
			},
		})
	}

	svc := NewActivityService(&fakeActivityRepo{recent: recent}, GetLocale("fr"))

	views, err := svc.RecentViews(context.Background(), uuid.New(), 10, now)

	assert.NoError(t, err)
	assert.Len(t, views, 10)
}
