package controller

import (
	"mbo_backend/internal/util"
	"mbo_backend/pkg/docstore"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store *docstore.Store
}

func NewHealthController(store *docstore.Store) *HealthController {
	return &HealthController{Store: store}
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 检查服务状态和数据文件位置
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"dataFile": c.Store.Path(),
		},
	})
}
