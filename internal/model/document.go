package model

import (
	"time"

	"github.com/google/uuid"
)

// SchemaVersion 当前数据文件格式版本
const SchemaVersion = "2.0"

// LegacySchemaVersion v1 格式（目标达成内容为单一字符串）
const LegacySchemaVersion = "1.0"

// Document 整个数据文件的根对象，每次变更后整体写回磁盘
type Document struct {
	Periods       map[string]*Period `json:"periods"`
	CurrentPeriod string             `json:"current_period"`
	Settings      Settings           `json:"settings"`
	Version       string             `json:"version"`
}

// Settings 文档内嵌设置，仅保存报告生成用的API密钥
type Settings struct {
	APIKey string `json:"api_key"`
}

// Period 一个评价期间。目标按录入顺序保存，达成内容按目标ID索引
type Period struct {
	Goals        []*Goal                 `json:"goals"`
	Achievements map[string]*Achievement `json:"achievements"`
	CreatedAt    string                  `json:"created_at"`
}

// Goal 带权重和期日的目标
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Weight      int    `json:"weight"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// Achievement 一个目标的达成记录。TotalPercentage 是派生值，
// 每次项目变更后必须重新计算，不能直接信任存储值
type Achievement struct {
	Items           []*AchievementItem `json:"items"`
	TotalPercentage float64            `json:"total_percentage"`
}

// AchievementItem 一条达成项目
type AchievementItem struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	Percentage float64 `json:"percentage"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}

// Statistics 当前期间的统计汇总
type Statistics struct {
	TotalGoals            int     `json:"totalGoals"`
	CompletedGoals        int     `json:"completedGoals"`
	PartialGoals          int     `json:"partialGoals"`
	TotalWeight           int     `json:"totalWeight"`
	AchievementRate       float64 `json:"achievementRate"`
	TotalAchievementItems int     `json:"totalAchievementItems"`
}

// NewDocument 返回默认的空文档
func NewDocument() *Document {
	return &Document{
		Periods:       map[string]*Period{},
		CurrentPeriod: "",
		Settings:      Settings{},
		Version:       SchemaVersion,
	}
}

// NewPeriod 返回空期间
func NewPeriod() *Period {
	return &Period{
		Goals:        []*Goal{},
		Achievements: map[string]*Achievement{},
		CreatedAt:    NowISO(),
	}
}

// NewAchievement 返回空达成记录
func NewAchievement() *Achievement {
	return &Achievement{Items: []*AchievementItem{}}
}

func GenerateUUID() string {
	return uuid.New().String()
}

// NowISO 当前时刻的ISO8601字符串，导出时取前10位作为日期
func NowISO() string {
	return time.Now().Format(time.RFC3339)
}
