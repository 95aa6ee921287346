package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"mbo_backend/internal/config"
	"mbo_backend/internal/repository"
	"mbo_backend/pkg/docstore"
)

func newReportFixture(t *testing.T, ai config.AIConfig) (*repository.MBORepository, *ReportService) {
	t.Helper()
	store := docstore.New(filepath.Join(t.TempDir(), "mbo_data.json"))
	repo := repository.NewMBORepository(store)
	if err := repo.CreatePeriod("2026年上期"); err != nil {
		t.Fatalf("CreatePeriod: %v", err)
	}
	return repo, NewReportService(repo, ai)
}

func TestGenerateReportWithoutAPIKey(t *testing.T) {
	_, svc := newReportFixture(t, config.AIConfig{})

	got := svc.GenerateReport(context.Background(), ToneBalanced)
	if got != msgAPIKeyMissing {
		t.Errorf("GenerateReport = %q, want the API key guidance message", got)
	}
	if got := svc.GenerateGoalSuggestions(context.Background(), "エンジニア", ""); got != msgAPIKeyMissing {
		t.Errorf("GenerateGoalSuggestions = %q, want the API key guidance message", got)
	}
}

func TestAPIKeyPriority(t *testing.T) {
	repo, svc := newReportFixture(t, config.AIConfig{APIKey: "sk-config"})

	if got := svc.apiKey(); got != "sk-config" {
		t.Errorf("apiKey = %q, want config value", got)
	}

	// 文書内に保存された鍵が設定ファイルより優先される
	if err := repo.SetAPIKey("sk-document"); err != nil {
		t.Fatal(err)
	}
	if got := svc.apiKey(); got != "sk-document" {
		t.Errorf("apiKey = %q, want document value", got)
	}
	if !svc.IsConfigured() {
		t.Error("IsConfigured = false with stored key")
	}
}

func TestSetAIConfigSwapsKey(t *testing.T) {
	_, svc := newReportFixture(t, config.AIConfig{})
	if svc.IsConfigured() {
		t.Fatal("IsConfigured = true before any key is set")
	}

	svc.SetAIConfig(config.AIConfig{APIKey: "sk-reloaded"})
	if !svc.IsConfigured() {
		t.Error("IsConfigured = false after config reload")
	}
}

func TestAnalyzeBeforeNetworkCalls(t *testing.T) {
	repo, svc := newReportFixture(t, config.AIConfig{APIKey: "sk-test"})

	// 目標が見つからない場合はAPIを呼ばずに案内文を返す
	if got := svc.AnalyzeAchievementQuality(context.Background(), "no-such-goal"); !strings.Contains(got, "見つかりません") {
		t.Errorf("analysis for unknown goal = %q", got)
	}

	goal, err := repo.AddGoal("売上目標", 5, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if got := svc.AnalyzeAchievementQuality(context.Background(), goal.ID); got != "達成内容が入力されていません。" {
		t.Errorf("analysis with no items = %q", got)
	}
}

func TestBuildReportPromptToneFallback(t *testing.T) {
	balanced := buildReportPrompt("本文", ToneBalanced)
	unknown := buildReportPrompt("本文", "未知の語気")
	if balanced != unknown {
		t.Error("unknown tone should fall back to the balanced instruction")
	}

	positive := buildReportPrompt("本文", "ポジティブ")
	if !strings.Contains(positive, "称賛") {
		t.Errorf("positive prompt missing tone instruction: %q", positive)
	}
	strict := buildReportPrompt("本文", "厳しめ")
	if !strings.Contains(strict, "改善点を明確に指摘") {
		t.Errorf("strict prompt missing tone instruction: %q", strict)
	}
}

func TestFormatGoalsAndAchievements(t *testing.T) {
	repo, svc := newReportFixture(t, config.AIConfig{})
	g1, _ := repo.AddGoal("売上目標", 8, "2026-09-30", "")
	repo.AddGoal("未着手目標", 3, "", "")
	repo.AddAchievementItem(g1.ID, "新規顧客10件", 40)

	text := svc.formatGoalsAndAchievements(repo.Goals(), repo.Achievements())

	if !strings.Contains(text, "目標1: 売上目標 (重要度: 8/10, 期日: 2026-09-30)") {
		t.Errorf("missing goal line:\n%s", text)
	}
	if !strings.Contains(text, "達成率: 40.0%") {
		t.Errorf("missing rate line:\n%s", text)
	}
	if !strings.Contains(text, "1. 新規顧客10件 (40.0%)") {
		t.Errorf("missing item line:\n%s", text)
	}
	if !strings.Contains(text, "達成内容: 未記入") {
		t.Errorf("missing placeholder for empty goal:\n%s", text)
	}
}
