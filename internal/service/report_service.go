package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mbo_backend/internal/config"
	"mbo_backend/internal/model"
	"mbo_backend/internal/repository"
	"mbo_backend/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ToneBalanced 默认报告语气
const ToneBalanced = "バランス"

// reportTones 语气标签到提示词指示的映射
var reportTones = map[string]string{
	"ポジティブ": "非常にポジティブで、達成したことを称賛し、成長を強調する報告書を作成してください。",
	"バランス":  "客観的でバランスの取れた、建設的なフィードバックを含む報告書を作成してください。",
	"厳しめ":   "厳しく客観的な視点で、改善点を明確に指摘する報告書を作成してください。",
}

const msgAPIKeyMissing = "⚠️ APIキーが設定されていません。設定タブでAPIキーを入力してください。"

// ReportService 通过OpenAI兼容的聊天接口生成MBO报告。
// 传输层错误一律转成带标记的文案返回，不向上抛
type ReportService struct {
	repo *repository.MBORepository

	mu sync.RWMutex
	ai config.AIConfig
}

func NewReportService(repo *repository.MBORepository, ai config.AIConfig) *ReportService {
	return &ReportService{repo: repo, ai: ai}
}

// SetAIConfig 配置热更新入口
func (s *ReportService) SetAIConfig(ai config.AIConfig) {
	s.mu.Lock()
	s.ai = ai
	s.mu.Unlock()
}

// apiKey 文档内保存的密钥优先，其次取配置文件里的
func (s *ReportService) apiKey() string {
	if key := s.repo.APIKey(); key != "" {
		return key
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ai.APIKey
}

func (s *ReportService) IsConfigured() bool {
	return s.apiKey() != ""
}

func (s *ReportService) client() *openai.Client {
	s.mu.RLock()
	ai := s.ai
	s.mu.RUnlock()

	cfg := openai.DefaultConfig(s.apiKey())
	if ai.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(ai.BaseURL, "/")
	}
	return openai.NewClientWithConfig(cfg)
}

func (s *ReportService) complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	s.mu.RLock()
	modelName := s.ai.Model
	s.mu.RUnlock()

	resp, err := s.client().CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       modelName,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("AI returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateReport 根据目标和达成内容生成报告。tone 未知时退回默认语气
func (s *ReportService) GenerateReport(ctx context.Context, tone string) string {
	if !s.IsConfigured() {
		return msgAPIKeyMissing
	}

	goalsText := s.formatGoalsAndAchievements(s.repo.Goals(), s.repo.Achievements())
	prompt := buildReportPrompt(goalsText, tone)

	s.mu.RLock()
	maxTokens, temperature := s.ai.MaxTokens, s.ai.Temperature
	s.mu.RUnlock()

	text, err := s.complete(ctx, prompt, maxTokens, temperature)
	if err != nil {
		logger.Log.Error("Report generation failed", zap.Error(err))
		return fmt.Sprintf("❌ 報告書の生成中にエラーが発生しました: %v", err)
	}
	return text
}

// GenerateGoalSuggestions 按职种/部门生成目标提案
func (s *ReportService) GenerateGoalSuggestions(ctx context.Context, role, department string) string {
	if !s.IsConfigured() {
		return msgAPIKeyMissing
	}

	var sb strings.Builder
	if role != "" {
		fmt.Fprintf(&sb, "職種: %s\n", role)
	}
	if department != "" {
		fmt.Fprintf(&sb, "部署: %s\n", department)
	}

	prompt := fmt.Sprintf(`以下の情報を基に、MBO（目標管理）の目標案を5つ提案してください。

%s

【要件】
- 具体的で測定可能な目標
- SMART原則（具体的、測定可能、達成可能、関連性、期限）に従う
- 各目標に重要度（1-10）の推奨値を含める
- 日本語で作成

目標案を提案してください。
`, sb.String())

	s.mu.RLock()
	maxTokens := s.ai.MaxTokens
	s.mu.RUnlock()

	text, err := s.complete(ctx, prompt, maxTokens, 0.8)
	if err != nil {
		logger.Log.Error("Goal suggestion failed", zap.Error(err))
		return fmt.Sprintf("❌ 目標提案の生成中にエラーが発生しました: %v", err)
	}
	return text
}

// AnalyzeAchievementQuality 分析单个目标的达成内容质量
func (s *ReportService) AnalyzeAchievementQuality(ctx context.Context, goalID string) string {
	if !s.IsConfigured() {
		return msgAPIKeyMissing
	}

	var goal *model.Goal
	for _, g := range s.repo.Goals() {
		if g.ID == goalID {
			goal = g
			break
		}
	}
	if goal == nil {
		return "⚠️ 対象の目標が見つかりません。"
	}

	items := s.repo.GoalAchievementItems(goalID)
	if len(items) == 0 {
		return "達成内容が入力されていません。"
	}

	var sb strings.Builder
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s (%.1f%%)\n", i+1, item.Content, item.Percentage)
	}

	prompt := fmt.Sprintf(`以下の目標と達成内容について、達成度と内容の質を分析してください。

【目標】
%s

【達成内容】
%s

【分析要件】
- 達成度の評価（0-100%%）
- 達成内容の具体性
- 改善提案
- 100文字程度で簡潔に

分析結果を提供してください。
`, goal.Title, sb.String())

	text, err := s.complete(ctx, prompt, 500, 0.5)
	if err != nil {
		logger.Log.Error("Achievement analysis failed", zap.Error(err))
		return fmt.Sprintf("❌ 達成内容の分析中にエラーが発生しました: %v", err)
	}
	return text
}

// formatGoalsAndAchievements 目标和达成内容的文本化，喂给提示词
func (s *ReportService) formatGoalsAndAchievements(goals []*model.Goal, achievements map[string]*model.Achievement) string {
	var sb strings.Builder

	for i, goal := range goals {
		total := 0.0
		var items []*model.AchievementItem
		if a, ok := achievements[goal.ID]; ok {
			total = a.TotalPercentage
			items = a.Items
		}

		fmt.Fprintf(&sb, "目標%d: %s (重要度: %d/10, 期日: %s)\n", i+1, goal.Title, goal.Weight, goal.Deadline)
		fmt.Fprintf(&sb, "達成率: %.1f%%\n", total)

		if len(items) > 0 {
			sb.WriteString("達成内容:\n")
			for j, item := range items {
				fmt.Fprintf(&sb, "  %d. %s (%.1f%%)\n", j+1, item.Content, item.Percentage)
			}
		} else {
			sb.WriteString("達成内容: 未記入\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func buildReportPrompt(goalsText, tone string) string {
	instruction, ok := reportTones[tone]
	if !ok {
		instruction = reportTones[ToneBalanced]
	}

	return fmt.Sprintf(`以下のMBO（目標管理）の情報を基に、%s

【目標と達成内容】
%s

【報告書の要件】
- 日本語で作成
- 各目標の評価と全体的な総評を含める
- 具体的な改善提案や次期への提言を含める
- 約300-500文字程度
- 読みやすい構成にする

報告書を作成してください。
`, instruction, goalsText)
}
