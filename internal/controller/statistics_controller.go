package controller

import (
	"mbo_backend/internal/service"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	service *service.StatisticsService
}

func NewStatisticsController(s *service.StatisticsService) *StatisticsController {
	return &StatisticsController{service: s}
}

// GetStatistics godoc
// @Summary 当前期间的统计汇总
// @Description 目标数、完成/部分达成数、总权重、加权达成率和达成率分布
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/statistics [get]
func (c *StatisticsController) GetStatistics(ctx *gin.Context) {
	util.Success(ctx, c.service.Overview())
}

// GetAchievementRate godoc
// @Summary 当前期间的加权达成率
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievement-rate [get]
func (c *StatisticsController) GetAchievementRate(ctx *gin.Context) {
	util.Success(ctx, gin.H{"achievementRate": c.service.AchievementRate()})
}
