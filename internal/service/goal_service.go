package service

import (
	"mbo_backend/internal/model"
	"mbo_backend/internal/repository"
)

type GoalService struct {
	repo *repository.MBORepository
}

func NewGoalService(repo *repository.MBORepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) AddGoal(title string, weight int, deadline, description string) (*model.Goal, error) {
	return s.repo.AddGoal(title, weight, deadline, description)
}

func (s *GoalService) DeleteGoal(goalID string) error {
	return s.repo.DeleteGoal(goalID)
}

// GoalView 目标及其派生的达成状态
type GoalView struct {
	*model.Goal
	TotalPercentage float64 `json:"totalPercentage"`
	ItemCount       int     `json:"itemCount"`
}

// ListGoals 当前期间的目标一览，附带总达成率
func (s *GoalService) ListGoals() []GoalView {
	goals := s.repo.Goals()
	achievements := s.repo.Achievements()

	views := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		view := GoalView{Goal: g}
		if a, ok := achievements[g.ID]; ok {
			view.TotalPercentage = a.TotalPercentage
			view.ItemCount = len(a.Items)
		}
		views = append(views, view)
	}
	return views
}
