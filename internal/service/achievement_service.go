package service

import (
	"mbo_backend/internal/model"
	"mbo_backend/internal/repository"
)

type AchievementService struct {
	repo *repository.MBORepository
}

func NewAchievementService(repo *repository.MBORepository) *AchievementService {
	return &AchievementService{repo: repo}
}

func (s *AchievementService) AddItem(goalID, content string, percentage float64) (*model.AchievementItem, error) {
	return s.repo.AddAchievementItem(goalID, content, percentage)
}

func (s *AchievementService) UpdateItem(goalID, itemID, content string, percentage float64) error {
	return s.repo.UpdateAchievementItem(goalID, itemID, content, percentage)
}

func (s *AchievementService) DeleteItem(goalID, itemID string) error {
	return s.repo.DeleteAchievementItem(goalID, itemID)
}

func (s *AchievementService) ListItems(goalID string) []*model.AchievementItem {
	return s.repo.GoalAchievementItems(goalID)
}

func (s *AchievementService) TotalPercentage(goalID string) float64 {
	return s.repo.GoalTotalPercentage(goalID)
}
