package service

import (
	"sort"

	"mbo_backend/internal/repository"
)

type ExportService struct {
	repo *repository.MBORepository
}

func NewExportService(repo *repository.MBORepository) *ExportService {
	return &ExportService{repo: repo}
}

// CSVSummary 每个目标一行。periodName 为空时取当前期间
func (s *ExportService) CSVSummary(periodName string) string {
	return s.repo.ExportCSVSummary(periodName)
}

// CSVDetailed 每条达成项目一行
func (s *ExportService) CSVDetailed(periodName string) string {
	return s.repo.ExportCSVDetailed(periodName)
}

// ExportablePeriods 有目标的期间一览
func (s *ExportService) ExportablePeriods() []string {
	names := s.repo.ExportablePeriods()
	sort.Strings(names)
	return names
}
