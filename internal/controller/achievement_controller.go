package controller

import (
	"errors"

	"mbo_backend/internal/service"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// maxAchievementItems 单个目标允许的达成项目上限
const maxAchievementItems = 20

type AchievementController struct {
	service *service.AchievementService
}

func NewAchievementController(s *service.AchievementService) *AchievementController {
	return &AchievementController{service: s}
}

// AchievementItemRequest 内容和达成率总是成对提交，不支持只改一项
type AchievementItemRequest struct {
	Content    string   `json:"content" binding:"required,max=1000"`
	Percentage *float64 `json:"percentage" binding:"required,min=0,max=100"`
}

// AddItem godoc
// @Summary 添加达成项目
// @Description 追加一条达成项目并重算目标总达成率
// @Tags 达成项目
// @Accept json
// @Produce json
// @Param goalId path string true "目标ID"
// @Param body body AchievementItemRequest true "达成内容"
// @Success 201 {object} util.Response
// @Router /api/goals/{goalId}/items [post]
func (c *AchievementController) AddItem(ctx *gin.Context) {
	goalID := ctx.Param("goalId")

	var req AchievementItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if len(c.service.ListItems(goalID)) >= maxAchievementItems {
		util.BadRequest(ctx, "達成項目は1つの目標につき20件までです")
		return
	}

	item, err := c.service.AddItem(goalID, req.Content, *req.Percentage)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Created(ctx, item)
}

// UpdateItem godoc
// @Summary 更新达成项目
// @Description 整体替换内容和达成率，盖更新时间戳并重算总达成率
// @Tags 达成项目
// @Accept json
// @Produce json
// @Param goalId path string true "目标ID"
// @Param itemId path string true "达成项目ID"
// @Param body body AchievementItemRequest true "达成内容"
// @Success 200 {object} util.Response
// @Router /api/goals/{goalId}/items/{itemId} [put]
func (c *AchievementController) UpdateItem(ctx *gin.Context) {
	goalID := ctx.Param("goalId")
	itemID := ctx.Param("itemId")

	var req AchievementItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.service.UpdateItem(goalID, itemID, req.Content, *req.Percentage); err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// DeleteItem godoc
// @Summary 删除达成项目
// @Description 项目ID不存在时视为成功（幂等），总达成率照常重算
// @Tags 达成项目
// @Produce json
// @Param goalId path string true "目标ID"
// @Param itemId path string true "达成项目ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{goalId}/items/{itemId} [delete]
func (c *AchievementController) DeleteItem(ctx *gin.Context) {
	goalID := ctx.Param("goalId")
	itemID := ctx.Param("itemId")

	if err := c.service.DeleteItem(goalID, itemID); err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// ListItems godoc
// @Summary 目标的达成项目一览
// @Tags 达成项目
// @Produce json
// @Param goalId path string true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{goalId}/items [get]
func (c *AchievementController) ListItems(ctx *gin.Context) {
	goalID := ctx.Param("goalId")

	util.Success(ctx, gin.H{
		"items":           c.service.ListItems(goalID),
		"totalPercentage": c.service.TotalPercentage(goalID),
	})
}

func (c *AchievementController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNoCurrentPeriod):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrGoalNotFound), errors.Is(err, util.ErrItemNotFound):
		util.NotFound(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
