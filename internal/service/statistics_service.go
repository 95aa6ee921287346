package service

import (
	"mbo_backend/internal/model"
	"mbo_backend/internal/repository"

	"github.com/montanaflynn/stats"
)

type StatisticsService struct {
	repo *repository.MBORepository
}

func NewStatisticsService(repo *repository.MBORepository) *StatisticsService {
	return &StatisticsService{repo: repo}
}

// Distribution 目标达成率的分布指标，进度页图表用
type Distribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Overview 统计汇总加达成率分布
type Overview struct {
	model.Statistics
	Distribution *Distribution `json:"distribution,omitempty"`
}

func (s *StatisticsService) AchievementRate() float64 {
	return s.repo.CalculateAchievementRate()
}

func (s *StatisticsService) Overview() Overview {
	overview := Overview{Statistics: s.repo.GetStatistics()}

	achievements := s.repo.Achievements()
	percentages := make(stats.Float64Data, 0, len(achievements))
	for _, g := range s.repo.Goals() {
		pct := 0.0
		if a, ok := achievements[g.ID]; ok {
			pct = a.TotalPercentage
		}
		percentages = append(percentages, pct)
	}

	if len(percentages) == 0 {
		return overview
	}

	mean, _ := stats.Mean(percentages)
	median, _ := stats.Median(percentages)
	min, _ := stats.Min(percentages)
	max, _ := stats.Max(percentages)
	overview.Distribution = &Distribution{
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
	}
	return overview
}
