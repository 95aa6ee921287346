package repository

import (
	"encoding/json"
	"strings"

	"mbo_backend/internal/model"
)

// legacyDocument v1 形式：达成内容是 目标ID→字符串，settings 是松散键值
type legacyDocument struct {
	Periods       map[string]legacyPeriod `json:"periods"`
	CurrentPeriod string                  `json:"current_period"`
	Settings      map[string]string       `json:"settings"`
}

type legacyPeriod struct {
	Goals        []*model.Goal     `json:"goals"`
	Achievements map[string]string `json:"achievements"`
	CreatedAt    string            `json:"created_at"`
}

type versionProbe struct {
	Version string `json:"version"`
}

// DecodeDocument 解析数据文件或导入的JSON。version 缺失或为v1时
// 执行一次性迁移并返回 migrated=true，由调用方立即落盘
func DecodeDocument(raw []byte) (*model.Document, bool, error) {
	var probe versionProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, false, err
	}

	if probe.Version == "" || probe.Version == model.LegacySchemaVersion {
		var old legacyDocument
		if err := json.Unmarshal(raw, &old); err != nil {
			return nil, false, err
		}
		return migrateV1ToV2(&old), true, nil
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, err
	}
	if doc.Periods == nil {
		doc.Periods = map[string]*model.Period{}
	}
	for _, p := range doc.Periods {
		if p.Goals == nil {
			p.Goals = []*model.Goal{}
		}
		if p.Achievements == nil {
			p.Achievements = map[string]*model.Achievement{}
		}
		for goalID, a := range p.Achievements {
			if a == nil {
				p.Achievements[goalID] = model.NewAchievement()
				continue
			}
			if a.Items == nil {
				a.Items = []*model.AchievementItem{}
			}
		}
	}

	// v2ファイルでも旧キー claude_api_key しか持たないものがあるため、
	// 未設定のときだけ受け取って新キーで持ち直す
	migrated := false
	if doc.Settings.APIKey == "" {
		var probe struct {
			Settings map[string]string `json:"settings"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil {
			if key := probe.Settings["claude_api_key"]; key != "" {
				doc.Settings.APIKey = key
				migrated = true
			}
		}
	}

	return &doc, migrated, nil
}

// migrateV1ToV2 将单一字符串的达成记录展开成项目列表：
// 非空文本变成一条100%的项目，空文本变成空列表
func migrateV1ToV2(old *legacyDocument) *model.Document {
	doc := model.NewDocument()
	doc.CurrentPeriod = old.CurrentPeriod

	// 旧版设置键 claude_api_key 也接收，保留已保存的密钥
	if key, ok := old.Settings["api_key"]; ok && key != "" {
		doc.Settings.APIKey = key
	} else if key, ok := old.Settings["claude_api_key"]; ok {
		doc.Settings.APIKey = key
	}

	for name, oldPeriod := range old.Periods {
		period := &model.Period{
			Goals:        oldPeriod.Goals,
			Achievements: map[string]*model.Achievement{},
			CreatedAt:    oldPeriod.CreatedAt,
		}
		if period.Goals == nil {
			period.Goals = []*model.Goal{}
		}
		if period.CreatedAt == "" {
			period.CreatedAt = model.NowISO()
		}

		for goalID, text := range oldPeriod.Achievements {
			if strings.TrimSpace(text) != "" {
				period.Achievements[goalID] = &model.Achievement{
					Items: []*model.AchievementItem{
						{
							ID:         model.GenerateUUID(),
							Content:    text,
							Percentage: 100.0,
							CreatedAt:  model.NowISO(),
						},
					},
					TotalPercentage: 100.0,
				}
			} else {
				period.Achievements[goalID] = model.NewAchievement()
			}
		}

		doc.Periods[name] = period
	}

	return doc
}
