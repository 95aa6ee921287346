package controller

import (
	"errors"

	"mbo_backend/internal/service"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PeriodController struct {
	service *service.PeriodService
}

func NewPeriodController(s *service.PeriodService) *PeriodController {
	return &PeriodController{service: s}
}

type CreatePeriodRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type SetCurrentPeriodRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreatePeriod godoc
// @Summary 新建评价期间
// @Description 名字非空且未使用时创建空期间并切换为当前期间
// @Tags 期间
// @Accept json
// @Produce json
// @Param body body CreatePeriodRequest true "期间名"
// @Success 201 {object} util.Response
// @Router /api/periods [post]
func (c *PeriodController) CreatePeriod(ctx *gin.Context) {
	var req CreatePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.service.CreatePeriod(req.Name); err != nil {
		switch {
		case errors.Is(err, util.ErrPeriodNameEmpty):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrPeriodExists):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"name": req.Name})
}

// ListPeriods godoc
// @Summary 期间一览
// @Tags 期间
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/periods [get]
func (c *PeriodController) ListPeriods(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"periods": c.service.ListPeriods(),
		"current": c.service.CurrentPeriodName(),
	})
}

// SetCurrentPeriod godoc
// @Summary 切换当前期间
// @Tags 期间
// @Accept json
// @Produce json
// @Param body body SetCurrentPeriodRequest true "期间名"
// @Success 200 {object} util.Response
// @Router /api/periods/current [put]
func (c *PeriodController) SetCurrentPeriod(ctx *gin.Context) {
	var req SetCurrentPeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.service.SetCurrentPeriod(req.Name); err != nil {
		if errors.Is(err, util.ErrPeriodNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"current": req.Name})
}

// GetCurrentPeriod godoc
// @Summary 当前期间详情
// @Tags 期间
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/periods/current [get]
func (c *PeriodController) GetCurrentPeriod(ctx *gin.Context) {
	name := c.service.CurrentPeriodName()
	if name == "" {
		util.NotFound(ctx, util.ErrNoCurrentPeriod.Error())
		return
	}

	util.Success(ctx, gin.H{
		"name":   name,
		"period": c.service.CurrentPeriod(),
	})
}
