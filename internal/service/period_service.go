package service

import (
	"sort"

	"mbo_backend/internal/model"
	"mbo_backend/internal/repository"
)

type PeriodService struct {
	repo *repository.MBORepository
}

func NewPeriodService(repo *repository.MBORepository) *PeriodService {
	return &PeriodService{repo: repo}
}

func (s *PeriodService) CreatePeriod(name string) error {
	return s.repo.CreatePeriod(name)
}

func (s *PeriodService) SetCurrentPeriod(name string) error {
	return s.repo.SetCurrentPeriod(name)
}

// ListPeriods 期间名一览（字典序，便于前端稳定展示）
func (s *PeriodService) ListPeriods() []string {
	names := s.repo.PeriodNames()
	sort.Strings(names)
	return names
}

func (s *PeriodService) CurrentPeriodName() string {
	return s.repo.CurrentPeriodName()
}

func (s *PeriodService) CurrentPeriod() *model.Period {
	return s.repo.CurrentPeriod()
}
