package controller

import (
	"mbo_backend/internal/service"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	service *service.SettingsService
}

func NewSettingsController(s *service.SettingsService) *SettingsController {
	return &SettingsController{service: s}
}

type SetAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// GetAPIKey godoc
// @Summary 查看报告生成用API密钥（打码）
// @Tags 设置
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/settings/api-key [get]
func (c *SettingsController) GetAPIKey(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"configured": c.service.HasAPIKey(),
		"apiKey":     c.service.MaskedAPIKey(),
	})
}

// SetAPIKey godoc
// @Summary 设置报告生成用API密钥
// @Description 存进数据文件。传空串即清除
// @Tags 设置
// @Accept json
// @Produce json
// @Param body body SetAPIKeyRequest true "API密钥"
// @Success 200 {object} util.Response
// @Router /api/settings/api-key [put]
func (c *SettingsController) SetAPIKey(ctx *gin.Context) {
	var req SetAPIKeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.service.SetAPIKey(req.APIKey); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
