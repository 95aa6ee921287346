package repository

import (
	"fmt"
	"mbo_backend/internal/model"
	"mbo_backend/internal/util"
	"mbo_backend/pkg/docstore"
	"mbo_backend/pkg/logger"
	"mbo_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// MBORepository 持有整个文档并负责所有期间/目标/达成项目的读写。
// 每个变更方法都以整体写回磁盘结束；写回失败时内存状态不回滚，
// 调用方需将失败视为"内存与磁盘可能不一致"
type MBORepository struct {
	store *docstore.Store
	doc   *model.Document
}

// NewMBORepository 加载数据文件并在需要时执行格式迁移。
// 文件缺失或内容损坏时静默回退到空文档
func NewMBORepository(store *docstore.Store) *MBORepository {
	r := &MBORepository{store: store}
	r.doc = r.load()
	return r
}

func (r *MBORepository) load() *model.Document {
	raw, err := r.store.LoadRaw()
	if err != nil {
		if err != docstore.ErrNotExist {
			logger.Log.Warn("Failed to read data file, starting with empty document", zap.Error(err))
		}
		return model.NewDocument()
	}

	doc, migrated, err := DecodeDocument(raw)
	if err != nil {
		logger.Log.Warn("Data file is not parseable, starting with empty document", zap.Error(err))
		return model.NewDocument()
	}

	if migrated {
		// 迁移结果立即落盘，保证迁移只执行一次
		if err := r.store.Save(doc); err != nil {
			logger.Log.Error("Failed to persist migrated document", zap.Error(err))
		} else {
			logger.Log.Info("Data file migrated to schema v2")
		}
	}

	return doc
}

func (r *MBORepository) save() error {
	if err := r.store.Save(r.doc); err != nil {
		logger.Log.Error("Failed to save data file", zap.Error(err))
		monitoring.DocumentWrites.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %v", util.ErrPersistence, err)
	}
	monitoring.DocumentWrites.WithLabelValues("ok").Inc()
	return nil
}

// Document 返回底层文档。仅供只读访问
func (r *MBORepository) Document() *model.Document {
	return r.doc
}

// --- 期间 ---

func (r *MBORepository) CreatePeriod(name string) error {
	if name == "" {
		return util.ErrPeriodNameEmpty
	}
	if _, exists := r.doc.Periods[name]; exists {
		return util.ErrPeriodExists
	}
	r.doc.Periods[name] = model.NewPeriod()
	r.doc.CurrentPeriod = name
	return r.save()
}

func (r *MBORepository) SetCurrentPeriod(name string) error {
	if _, exists := r.doc.Periods[name]; !exists {
		return util.ErrPeriodNotFound
	}
	r.doc.CurrentPeriod = name
	return r.save()
}

func (r *MBORepository) CurrentPeriodName() string {
	return r.doc.CurrentPeriod
}

// CurrentPeriod 返回当前期间，未选择或指向不存在的期间时返回 nil
func (r *MBORepository) CurrentPeriod() *model.Period {
	if r.doc.CurrentPeriod == "" {
		return nil
	}
	return r.doc.Periods[r.doc.CurrentPeriod]
}

func (r *MBORepository) PeriodNames() []string {
	names := make([]string, 0, len(r.doc.Periods))
	for name := range r.doc.Periods {
		names = append(names, name)
	}
	return names
}

// --- 目标 ---

func (r *MBORepository) AddGoal(title string, weight int, deadline, description string) (*model.Goal, error) {
	period := r.CurrentPeriod()
	if period == nil {
		return nil, util.ErrNoCurrentPeriod
	}

	goal := &model.Goal{
		ID:          model.GenerateUUID(),
		Title:       title,
		Weight:      weight,
		Deadline:    deadline,
		Description: description,
		CreatedAt:   model.NowISO(),
	}
	period.Goals = append(period.Goals, goal)
	period.Achievements[goal.ID] = model.NewAchievement()

	if err := r.save(); err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal 删除目标及其达成记录。ID不存在时是无操作而非错误
func (r *MBORepository) DeleteGoal(goalID string) error {
	period := r.CurrentPeriod()
	if period == nil {
		return util.ErrNoCurrentPeriod
	}

	goals := period.Goals[:0]
	for _, g := range period.Goals {
		if g.ID != goalID {
			goals = append(goals, g)
		}
	}
	period.Goals = goals
	delete(period.Achievements, goalID)

	return r.save()
}

func (r *MBORepository) Goals() []*model.Goal {
	period := r.CurrentPeriod()
	if period == nil {
		return []*model.Goal{}
	}
	return period.Goals
}

func (r *MBORepository) findGoal(period *model.Period, goalID string) *model.Goal {
	for _, g := range period.Goals {
		if g.ID == goalID {
			return g
		}
	}
	return nil
}

// --- 达成项目 ---

// Achievements 返回当前期间的达成记录，为没有记录的目标补上空记录
func (r *MBORepository) Achievements() map[string]*model.Achievement {
	period := r.CurrentPeriod()
	if period == nil {
		return map[string]*model.Achievement{}
	}
	for _, g := range period.Goals {
		if _, ok := period.Achievements[g.ID]; !ok {
			period.Achievements[g.ID] = model.NewAchievement()
		}
	}
	return period.Achievements
}

func (r *MBORepository) GoalAchievementItems(goalID string) []*model.AchievementItem {
	if a, ok := r.Achievements()[goalID]; ok {
		return a.Items
	}
	return []*model.AchievementItem{}
}

func (r *MBORepository) GoalTotalPercentage(goalID string) float64 {
	if a, ok := r.Achievements()[goalID]; ok {
		return a.TotalPercentage
	}
	return 0.0
}

func (r *MBORepository) AddAchievementItem(goalID, content string, percentage float64) (*model.AchievementItem, error) {
	period := r.CurrentPeriod()
	if period == nil {
		return nil, util.ErrNoCurrentPeriod
	}
	if r.findGoal(period, goalID) == nil {
		return nil, util.ErrGoalNotFound
	}

	achievement, ok := period.Achievements[goalID]
	if !ok {
		achievement = model.NewAchievement()
		period.Achievements[goalID] = achievement
	}

	item := &model.AchievementItem{
		ID:         model.GenerateUUID(),
		Content:    content,
		Percentage: percentage,
		CreatedAt:  model.NowISO(),
	}
	achievement.Items = append(achievement.Items, item)
	r.recalculate(achievement)

	if err := r.save(); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateAchievementItem 内容和达成率总是成对更新，并盖上更新时刻
func (r *MBORepository) UpdateAchievementItem(goalID, itemID, content string, percentage float64) error {
	period := r.CurrentPeriod()
	if period == nil {
		return util.ErrNoCurrentPeriod
	}
	achievement, ok := period.Achievements[goalID]
	if !ok {
		return util.ErrGoalNotFound
	}

	var target *model.AchievementItem
	for _, item := range achievement.Items {
		if item.ID == itemID {
			target = item
			break
		}
	}
	if target == nil {
		return util.ErrItemNotFound
	}

	target.Content = content
	target.Percentage = percentage
	target.UpdatedAt = model.NowISO()
	r.recalculate(achievement)

	return r.save()
}

// DeleteAchievementItem 项目不存在时是无操作
func (r *MBORepository) DeleteAchievementItem(goalID, itemID string) error {
	period := r.CurrentPeriod()
	if period == nil {
		return util.ErrNoCurrentPeriod
	}
	achievement, ok := period.Achievements[goalID]
	if !ok {
		return util.ErrGoalNotFound
	}

	items := achievement.Items[:0]
	for _, item := range achievement.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	achievement.Items = items
	r.recalculate(achievement)

	return r.save()
}

// recalculate 重算目标总达成率：各项目简单求和，仅在目标层面以100封顶。
// 单个项目即使超过100也不单独截断
func (r *MBORepository) recalculate(a *model.Achievement) {
	total := 0.0
	for _, item := range a.Items {
		total += item.Percentage
	}
	if total > 100.0 {
		total = 100.0
	}
	a.TotalPercentage = total
}

// --- 汇总 ---

// CalculateAchievementRate 权重加权平均。没有目标或总权重为0时返回0
func (r *MBORepository) CalculateAchievementRate() float64 {
	goals := r.Goals()
	achievements := r.Achievements()

	if len(goals) == 0 {
		return 0.0
	}

	totalWeighted := 0.0
	totalWeight := 0.0
	for _, g := range goals {
		pct := 0.0
		if a, ok := achievements[g.ID]; ok {
			pct = a.TotalPercentage
		}
		totalWeighted += float64(g.Weight) * pct
		totalWeight += float64(g.Weight)
	}

	if totalWeight == 0 {
		return 0.0
	}
	return totalWeighted / totalWeight
}

// GetStatistics 当前期间的统计：完成(>=100%)、部分达成(0<x<100)等
func (r *MBORepository) GetStatistics() model.Statistics {
	goals := r.Goals()
	achievements := r.Achievements()

	stats := model.Statistics{}
	if len(goals) == 0 {
		return stats
	}

	for _, g := range goals {
		pct := 0.0
		itemCount := 0
		if a, ok := achievements[g.ID]; ok {
			pct = a.TotalPercentage
			itemCount = len(a.Items)
		}
		stats.TotalAchievementItems += itemCount
		stats.TotalWeight += g.Weight

		if pct >= 100.0 {
			stats.CompletedGoals++
		} else if pct > 0.0 {
			stats.PartialGoals++
		}
	}

	stats.TotalGoals = len(goals)
	stats.AchievementRate = r.CalculateAchievementRate()
	return stats
}

// --- 设置 ---

func (r *MBORepository) APIKey() string {
	return r.doc.Settings.APIKey
}

func (r *MBORepository) SetAPIKey(key string) error {
	r.doc.Settings.APIKey = key
	return r.save()
}

// --- 备份 ---

// ExportData 整个文档的JSON文本
func (r *MBORepository) ExportData() (string, error) {
	data, err := docstore.MarshalIndent(r.doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportData 从JSON文本整体恢复。解析失败时现有数据不受影响；
// 旧格式会先走迁移再落盘
func (r *MBORepository) ImportData(jsonText string) error {
	doc, _, err := DecodeDocument([]byte(jsonText))
	if err != nil {
		return util.ErrParse
	}
	r.doc = doc
	return r.save()
}
