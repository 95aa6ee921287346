package controller

import (
	"errors"

	"mbo_backend/internal/service"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	service *service.GoalService
}

func NewGoalController(s *service.GoalService) *GoalController {
	return &GoalController{service: s}
}

// AddGoalRequest 重要度1-10，省略时取5。长度上限只在输入层校验，
// 仓库层不再复核
type AddGoalRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Weight      int    `json:"weight" binding:"omitempty,min=1,max=10"`
	Deadline    string `json:"deadline" binding:"required"`
	Description string `json:"description" binding:"max=500"`
}

// AddGoal godoc
// @Summary 添加目标
// @Description 在当前期间追加一个目标并初始化空的达成记录
// @Tags 目标
// @Accept json
// @Produce json
// @Param body body AddGoalRequest true "目标内容"
// @Success 201 {object} util.Response
// @Router /api/goals [post]
func (c *GoalController) AddGoal(ctx *gin.Context) {
	var req AddGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Weight == 0 {
		req.Weight = 5
	}

	goal, err := c.service.AddGoal(req.Title, req.Weight, req.Deadline, req.Description)
	if err != nil {
		if errors.Is(err, util.ErrNoCurrentPeriod) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// ListGoals godoc
// @Summary 当前期间的目标一览
// @Tags 目标
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	util.Success(ctx, gin.H{"goals": c.service.ListGoals()})
}

// DeleteGoal godoc
// @Summary 删除目标
// @Description 同时删除对应的达成记录。ID不存在时视为成功（幂等）
// @Tags 目标
// @Produce json
// @Param goalId path string true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{goalId} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	goalID := ctx.Param("goalId")

	if err := c.service.DeleteGoal(goalID); err != nil {
		if errors.Is(err, util.ErrNoCurrentPeriod) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
