package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/repository"
)

// ActivityService is the farm-scoped, append-only event feed.
type ActivityService struct {
	activityRepo repository.IActivityRepository
	locale       Locale
}

func NewActivityService(activityRepo repository.IActivityRepository, locale Locale) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		locale:       locale,
	}
}

// Append inserts one event. Enum constraints are enforced by the store;
// there is no other validation.
func (s *ActivityService) Append(ctx context.Context, activity *models.Activity) (uuid.UUID, error) {
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return uuid.Nil, err
	}
	return activity.ID, nil
}

// RecentViews returns at most limit activities, newest first, rendered for
// the feed: relative-time label and a display subject resolved as the plant
// field, else the greenhouse name, else "General".
func (s *ActivityService) RecentViews(ctx context.Context, farmID uuid.UUID, limit int, now time.Time) ([]models.ActivityView, error) {
	activities, err := s.activityRepo.GetRecentByFarm(ctx, farmID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]models.ActivityView, 0, len(activities))
	for _, activity := range activities {
		plant := "General"
		if activity.Plant != nil && *activity.Plant != "" {
			plant = *activity.Plant
		} else if activity.GreenhouseName != nil && *activity.GreenhouseName != "" {
			plant = *activity.GreenhouseName
		}

		views = append(views, models.ActivityView{
			ID:     activity.ID.String(),
			Time:   s.locale.FormatRelativeTime(activity.CreatedAt, now),
			Action: activity.Title,
			Plant:  plant,
			Status: activity.Status,
		})
	}
	return views, nil
}
