package controller

import (
	"mbo_backend/internal/service"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *service.ReportService
}

func NewReportController(s *service.ReportService) *ReportController {
	return &ReportController{service: s}
}

type GenerateReportRequest struct {
	Tone string `json:"tone"`
}

type GoalSuggestionsRequest struct {
	Role       string `json:"role" binding:"max=100"`
	Department string `json:"department" binding:"max=100"`
}

type AnalyzeRequest struct {
	GoalID string `json:"goalId" binding:"required"`
}

// GenerateReport godoc
// @Summary 生成MBO报告
// @Description 语气可选 ポジティブ/バランス/厳しめ，缺省为バランス。
// API密钥未设置或调用失败时在响应文本中带提示，不返回错误码
// @Tags 报告
// @Accept json
// @Produce json
// @Param body body GenerateReportRequest true "报告语气"
// @Success 200 {object} util.Response
// @Router /api/report [post]
func (c *ReportController) GenerateReport(ctx *gin.Context) {
	var req GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Tone == "" {
		req.Tone = service.ToneBalanced
	}

	report := c.service.GenerateReport(ctx.Request.Context(), req.Tone)
	util.Success(ctx, gin.H{"report": report})
}

// GoalSuggestions godoc
// @Summary 按职种/部门生成目标提案
// @Tags 报告
// @Accept json
// @Produce json
// @Param body body GoalSuggestionsRequest true "职种与部门"
// @Success 200 {object} util.Response
// @Router /api/report/goal-suggestions [post]
func (c *ReportController) GoalSuggestions(ctx *gin.Context) {
	var req GoalSuggestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	suggestions := c.service.GenerateGoalSuggestions(ctx.Request.Context(), req.Role, req.Department)
	util.Success(ctx, gin.H{"suggestions": suggestions})
}

// Analyze godoc
// @Summary 分析目标达成内容的质量
// @Tags 报告
// @Accept json
// @Produce json
// @Param body body AnalyzeRequest true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/report/analyze [post]
func (c *ReportController) Analyze(ctx *gin.Context) {
	var req AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	analysis := c.service.AnalyzeAchievementQuality(ctx.Request.Context(), req.GoalID)
	util.Success(ctx, gin.H{"analysis": analysis})
}
