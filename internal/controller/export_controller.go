package controller

import (
	"fmt"
	"net/http"

	"mbo_backend/internal/service"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	service *service.ExportService
}

func NewExportController(s *service.ExportService) *ExportController {
	return &ExportController{service: s}
}

// ExportSummary godoc
// @Summary 汇总CSV导出（每目标一行）
// @Description period 省略时导出当前期间。期间不存在时404
// @Tags 导出
// @Produce text/csv
// @Param period query string false "期间名"
// @Success 200 {string} string "CSV"
// @Router /api/export/csv/summary [get]
func (c *ExportController) ExportSummary(ctx *gin.Context) {
	period := ctx.Query("period")
	csvText := c.service.CSVSummary(period)
	if csvText == "" {
		util.NotFound(ctx, util.ErrPeriodNotFound.Error())
		return
	}
	writeCSV(ctx, "mbo_summary", csvText)
}

// ExportDetailed godoc
// @Summary 明细CSV导出（每达成项目一行）
// @Description 没有项目的目标也输出一行占位
// @Tags 导出
// @Produce text/csv
// @Param period query string false "期间名"
// @Success 200 {string} string "CSV"
// @Router /api/export/csv/detailed [get]
func (c *ExportController) ExportDetailed(ctx *gin.Context) {
	period := ctx.Query("period")
	csvText := c.service.CSVDetailed(period)
	if csvText == "" {
		util.NotFound(ctx, util.ErrPeriodNotFound.Error())
		return
	}
	writeCSV(ctx, "mbo_detailed", csvText)
}

// ListExportablePeriods godoc
// @Summary 可导出的期间一览（至少有一个目标）
// @Tags 导出
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/export/periods [get]
func (c *ExportController) ListExportablePeriods(ctx *gin.Context) {
	util.Success(ctx, gin.H{"periods": c.service.ExportablePeriods()})
}

func writeCSV(ctx *gin.Context, prefix, csvText string) {
	filename := fmt.Sprintf("%s.csv", prefix)
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}
