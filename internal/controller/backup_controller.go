package controller

import (
	"errors"
	"io"
	"net/http"

	"mbo_backend/internal/service"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BackupController struct {
	service *service.BackupService
}

func NewBackupController(s *service.BackupService) *BackupController {
	return &BackupController{service: s}
}

// Export godoc
// @Summary 导出整个数据文件
// @Description 返回当前文档的JSON文本，可作为手动备份保存
// @Tags 备份
// @Produce json
// @Success 200 {string} string "JSON"
// @Router /api/backup/export [get]
func (c *BackupController) Export(ctx *gin.Context) {
	data, err := c.service.Export()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="mbo_data.json"`)
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(data))
}

// Import godoc
// @Summary 从JSON恢复整个数据文件
// @Description 请求体即备份JSON。旧格式会自动迁移；解析失败时现有数据不变
// @Tags 备份
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/backup/import [post]
func (c *BackupController) Import(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.service.Import(string(body)); err != nil {
		if errors.Is(err, util.ErrParse) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// Upload godoc
// @Summary 上传带时间戳的备份
// @Description 把当前文档写到配置的存储（本地目录或MinIO）
// @Tags 备份
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/backup/upload [post]
func (c *BackupController) Upload(ctx *gin.Context) {
	location, err := c.service.Upload(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"location": location})
}
