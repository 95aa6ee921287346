package repository

import (
	"encoding/csv"
	"fmt"
	"strings"

	"mbo_backend/internal/model"
)

// NoEntryPlaceholder 没有达成项目时在导出中使用的占位文言
const NoEntryPlaceholder = "未記入"

var summaryHeader = []string{
	"期間", "目標ID", "目標タイトル", "重要度", "期日", "目標詳細",
	"達成率(%)", "達成項目数", "達成項目詳細", "作成日",
}

var detailedHeader = []string{
	"期間", "目標ID", "目標タイトル", "目標重要度", "目標期日", "目標詳細",
	"達成項目ID", "達成項目内容", "達成項目率(%)", "達成項目作成日", "目標全体達成率(%)",
}

// ExportCSVSummary 每个目标一行的汇总视图。期间不存在时返回空串
func (r *MBORepository) ExportCSVSummary(periodName string) string {
	periodName, period := r.resolvePeriod(periodName)
	if period == nil {
		return ""
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Write(summaryHeader)

	for _, goal := range period.Goals {
		achievement := period.Achievements[goal.ID]
		total := 0.0
		var items []*model.AchievementItem
		if achievement != nil {
			total = achievement.TotalPercentage
			items = achievement.Items
		}

		details := make([]string, 0, len(items))
		for i, item := range items {
			details = append(details, fmt.Sprintf("%d. %s (%.1f%%)", i+1, item.Content, item.Percentage))
		}
		detailText := NoEntryPlaceholder
		if len(details) > 0 {
			detailText = strings.Join(details, " | ")
		}

		w.Write([]string{
			periodName,
			goal.ID,
			goal.Title,
			fmt.Sprintf("%d", goal.Weight),
			goal.Deadline,
			goal.Description,
			fmt.Sprintf("%.1f", total),
			fmt.Sprintf("%d", len(items)),
			detailText,
			datePart(goal.CreatedAt),
		})
	}

	w.Flush()
	return buf.String()
}

// ExportCSVDetailed 每条达成项目一行的明细视图。没有项目的目标
// 仍然输出一行占位，保证行数不少于目标数
func (r *MBORepository) ExportCSVDetailed(periodName string) string {
	periodName, period := r.resolvePeriod(periodName)
	if period == nil {
		return ""
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Write(detailedHeader)

	for _, goal := range period.Goals {
		achievement := period.Achievements[goal.ID]
		total := 0.0
		var items []*model.AchievementItem
		if achievement != nil {
			total = achievement.TotalPercentage
			items = achievement.Items
		}

		if len(items) == 0 {
			w.Write([]string{
				periodName, goal.ID, goal.Title,
				fmt.Sprintf("%d", goal.Weight),
				goal.Deadline, goal.Description,
				"", NoEntryPlaceholder, "0.0", "", "0.0",
			})
			continue
		}

		for _, item := range items {
			w.Write([]string{
				periodName,
				goal.ID,
				goal.Title,
				fmt.Sprintf("%d", goal.Weight),
				goal.Deadline,
				goal.Description,
				item.ID,
				item.Content,
				fmt.Sprintf("%.1f", item.Percentage),
				datePart(item.CreatedAt),
				fmt.Sprintf("%.1f", total),
			})
		}
	}

	w.Flush()
	return buf.String()
}

// ExportablePeriods 至少有一个目标的期间名一览
func (r *MBORepository) ExportablePeriods() []string {
	names := make([]string, 0, len(r.doc.Periods))
	for name, period := range r.doc.Periods {
		if len(period.Goals) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// resolvePeriod 空名字表示当前期间
func (r *MBORepository) resolvePeriod(name string) (string, *model.Period) {
	if name == "" {
		name = r.doc.CurrentPeriod
	}
	if name == "" {
		return "", nil
	}
	return name, r.doc.Periods[name]
}

// datePart ISO时间戳的日期部分（前10位）
func datePart(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}
