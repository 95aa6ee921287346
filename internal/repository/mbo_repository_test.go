package repository

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"mbo_backend/internal/util"
	"mbo_backend/pkg/docstore"
)

func newTestRepo(t *testing.T) *MBORepository {
	t.Helper()
	store := docstore.New(filepath.Join(t.TempDir(), "mbo_data.json"))
	return NewMBORepository(store)
}

func newTestRepoWithPeriod(t *testing.T) *MBORepository {
	t.Helper()
	repo := newTestRepo(t)
	if err := repo.CreatePeriod("2026年上期"); err != nil {
		t.Fatalf("CreatePeriod: %v", err)
	}
	return repo
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCreatePeriod(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.CreatePeriod("2026年上期"); err != nil {
		t.Fatalf("CreatePeriod: %v", err)
	}
	if got := repo.CurrentPeriodName(); got != "2026年上期" {
		t.Errorf("CurrentPeriodName = %q, want %q", got, "2026年上期")
	}

	if err := repo.CreatePeriod("2026年上期"); !errors.Is(err, util.ErrPeriodExists) {
		t.Errorf("duplicate CreatePeriod error = %v, want ErrPeriodExists", err)
	}
	// 空の名前は重複ではなく入力エラーとして区別する
	if err := repo.CreatePeriod(""); !errors.Is(err, util.ErrPeriodNameEmpty) {
		t.Errorf("empty CreatePeriod error = %v, want ErrPeriodNameEmpty", err)
	}
	if got := repo.CurrentPeriodName(); got != "2026年上期" {
		t.Errorf("current period changed by rejected create: %q", got)
	}
}

func TestSetCurrentPeriod(t *testing.T) {
	repo := newTestRepo(t)
	repo.CreatePeriod("2025年下期")
	repo.CreatePeriod("2026年上期")

	if err := repo.SetCurrentPeriod("2025年下期"); err != nil {
		t.Fatalf("SetCurrentPeriod: %v", err)
	}
	if got := repo.CurrentPeriodName(); got != "2025年下期" {
		t.Errorf("CurrentPeriodName = %q, want %q", got, "2025年下期")
	}

	if err := repo.SetCurrentPeriod("存在しない期間"); !errors.Is(err, util.ErrPeriodNotFound) {
		t.Errorf("SetCurrentPeriod error = %v, want ErrPeriodNotFound", err)
	}
}

func TestAddGoalWithoutPeriod(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.AddGoal("売上目標", 5, "", ""); !errors.Is(err, util.ErrNoCurrentPeriod) {
		t.Errorf("AddGoal error = %v, want ErrNoCurrentPeriod", err)
	}
}

func TestAddGoalInitializesAchievement(t *testing.T) {
	repo := newTestRepoWithPeriod(t)

	goal, err := repo.AddGoal("売上目標", 8, "2026-09-30", "前年比110%")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if goal.ID == "" || goal.CreatedAt == "" {
		t.Errorf("goal missing generated fields: %+v", goal)
	}

	if got := repo.GoalTotalPercentage(goal.ID); !almostEqual(got, 0.0) {
		t.Errorf("GoalTotalPercentage = %v, want 0", got)
	}
	if items := repo.GoalAchievementItems(goal.ID); len(items) != 0 {
		t.Errorf("new goal has %d items, want 0", len(items))
	}
}

func TestTotalPercentageCappedAtGoalLevel(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	goal, _ := repo.AddGoal("売上目標", 5, "", "")

	if _, err := repo.AddAchievementItem(goal.ID, "新規顧客10件", 40); err != nil {
		t.Fatalf("AddAchievementItem: %v", err)
	}
	if _, err := repo.AddAchievementItem(goal.ID, "既存顧客の更新", 70); err != nil {
		t.Fatalf("AddAchievementItem: %v", err)
	}

	if got := repo.GoalTotalPercentage(goal.ID); !almostEqual(got, 100.0) {
		t.Errorf("GoalTotalPercentage = %v, want 100 (40+70 capped)", got)
	}
}

func TestItemPercentageNotCappedIndividually(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	goal, _ := repo.AddGoal("売上目標", 5, "", "")

	item, err := repo.AddAchievementItem(goal.ID, "大口受注", 150)
	if err != nil {
		t.Fatalf("AddAchievementItem: %v", err)
	}

	if !almostEqual(item.Percentage, 150.0) {
		t.Errorf("item.Percentage = %v, want 150 (stored as given)", item.Percentage)
	}
	if got := repo.GoalTotalPercentage(goal.ID); !almostEqual(got, 100.0) {
		t.Errorf("GoalTotalPercentage = %v, want 100", got)
	}
}

func TestRecalculateAfterDelete(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	goal, _ := repo.AddGoal("売上目標", 5, "", "")
	first, _ := repo.AddAchievementItem(goal.ID, "一件目", 40)
	repo.AddAchievementItem(goal.ID, "二件目", 30)

	if err := repo.DeleteAchievementItem(goal.ID, first.ID); err != nil {
		t.Fatalf("DeleteAchievementItem: %v", err)
	}
	if got := repo.GoalTotalPercentage(goal.ID); !almostEqual(got, 30.0) {
		t.Errorf("GoalTotalPercentage = %v, want 30", got)
	}
}

func TestDeleteAchievementItemIdempotent(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	goal, _ := repo.AddGoal("売上目標", 5, "", "")
	repo.AddAchievementItem(goal.ID, "一件目", 40)

	if err := repo.DeleteAchievementItem(goal.ID, "no-such-item"); err != nil {
		t.Errorf("delete of unknown item = %v, want nil", err)
	}
	if items := repo.GoalAchievementItems(goal.ID); len(items) != 1 {
		t.Errorf("items = %d, want 1 (untouched)", len(items))
	}
}

func TestUpdateAchievementItem(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	goal, _ := repo.AddGoal("売上目標", 5, "", "")
	item, _ := repo.AddAchievementItem(goal.ID, "初版", 20)

	if err := repo.UpdateAchievementItem(goal.ID, item.ID, "改訂版", 60); err != nil {
		t.Fatalf("UpdateAchievementItem: %v", err)
	}

	got := repo.GoalAchievementItems(goal.ID)[0]
	if got.Content != "改訂版" || !almostEqual(got.Percentage, 60.0) {
		t.Errorf("item after update = %q/%v, want 改訂版/60", got.Content, got.Percentage)
	}
	if got.UpdatedAt == "" {
		t.Error("UpdatedAt not stamped on update")
	}
	if total := repo.GoalTotalPercentage(goal.ID); !almostEqual(total, 60.0) {
		t.Errorf("GoalTotalPercentage = %v, want 60", total)
	}

	if err := repo.UpdateAchievementItem(goal.ID, "no-such-item", "x", 1); !errors.Is(err, util.ErrItemNotFound) {
		t.Errorf("update of unknown item = %v, want ErrItemNotFound", err)
	}
}

func TestDeleteGoalRemovesAchievements(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	goal, _ := repo.AddGoal("売上目標", 5, "", "")
	repo.AddAchievementItem(goal.ID, "一件目", 40)

	if err := repo.DeleteGoal(goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if len(repo.Goals()) != 0 {
		t.Errorf("Goals() = %d, want 0", len(repo.Goals()))
	}

	// 削除後は同じIDへの追加が失敗する
	if _, err := repo.AddAchievementItem(goal.ID, "幽霊", 10); !errors.Is(err, util.ErrGoalNotFound) {
		t.Errorf("AddAchievementItem after delete = %v, want ErrGoalNotFound", err)
	}

	if err := repo.DeleteGoal("no-such-goal"); err != nil {
		t.Errorf("delete of unknown goal = %v, want nil", err)
	}
}

func TestCalculateAchievementRateWeighted(t *testing.T) {
	repo := newTestRepoWithPeriod(t)

	if got := repo.CalculateAchievementRate(); !almostEqual(got, 0.0) {
		t.Errorf("rate with no goals = %v, want 0", got)
	}

	g1, _ := repo.AddGoal("主要目標", 10, "", "")
	g2, _ := repo.AddGoal("副次目標", 5, "", "")
	repo.AddAchievementItem(g1.ID, "完了", 100)
	repo.AddAchievementItem(g2.ID, "半分", 50)

	want := (10*100.0 + 5*50.0) / 15.0
	if got := repo.CalculateAchievementRate(); !almostEqual(got, want) {
		t.Errorf("CalculateAchievementRate = %v, want %v", got, want)
	}
}

func TestCalculateAchievementRateZeroWeight(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	g, _ := repo.AddGoal("重みゼロ", 0, "", "")
	repo.AddAchievementItem(g.ID, "何か", 80)

	if got := repo.CalculateAchievementRate(); !almostEqual(got, 0.0) {
		t.Errorf("rate with zero total weight = %v, want 0", got)
	}
}

func TestGetStatistics(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	g1, _ := repo.AddGoal("完了目標", 5, "", "")
	g2, _ := repo.AddGoal("途中目標", 3, "", "")
	repo.AddGoal("未着手目標", 2, "", "")
	repo.AddAchievementItem(g1.ID, "全部", 100)
	repo.AddAchievementItem(g2.ID, "一部", 30)
	repo.AddAchievementItem(g2.ID, "続き", 20)

	stats := repo.GetStatistics()
	if stats.TotalGoals != 3 {
		t.Errorf("TotalGoals = %d, want 3", stats.TotalGoals)
	}
	if stats.CompletedGoals != 1 {
		t.Errorf("CompletedGoals = %d, want 1", stats.CompletedGoals)
	}
	if stats.PartialGoals != 1 {
		t.Errorf("PartialGoals = %d, want 1", stats.PartialGoals)
	}
	if stats.TotalWeight != 10 {
		t.Errorf("TotalWeight = %d, want 10", stats.TotalWeight)
	}
	if stats.TotalAchievementItems != 3 {
		t.Errorf("TotalAchievementItems = %d, want 3", stats.TotalAchievementItems)
	}
}

func TestPersistenceAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mbo_data.json")
	store := docstore.New(path)

	repo := NewMBORepository(store)
	repo.CreatePeriod("2026年上期")
	goal, _ := repo.AddGoal("売上目標", 7, "2026-09-30", "説明")
	repo.AddAchievementItem(goal.ID, "実績", 55)

	reloaded := NewMBORepository(docstore.New(path))
	if got := reloaded.CurrentPeriodName(); got != "2026年上期" {
		t.Fatalf("reloaded period = %q, want 2026年上期", got)
	}
	goals := reloaded.Goals()
	if len(goals) != 1 || goals[0].Title != "売上目標" || goals[0].Weight != 7 {
		t.Errorf("reloaded goals = %+v", goals)
	}
	if got := reloaded.GoalTotalPercentage(goal.ID); !almostEqual(got, 55.0) {
		t.Errorf("reloaded total = %v, want 55", got)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	goal, _ := repo.AddGoal("売上目標", 7, "", "")
	repo.AddAchievementItem(goal.ID, "実績", 55)
	repo.SetAPIKey("sk-test")

	exported, err := repo.ExportData()
	if err != nil {
		t.Fatalf("ExportData: %v", err)
	}

	other := newTestRepo(t)
	if err := other.ImportData(exported); err != nil {
		t.Fatalf("ImportData: %v", err)
	}
	if got := other.CurrentPeriodName(); got != "2026年上期" {
		t.Errorf("imported period = %q", got)
	}
	if got := other.GoalTotalPercentage(goal.ID); !almostEqual(got, 55.0) {
		t.Errorf("imported total = %v, want 55", got)
	}
	if got := other.APIKey(); got != "sk-test" {
		t.Errorf("imported api key = %q", got)
	}
}

func TestImportInvalidJSONLeavesStateUntouched(t *testing.T) {
	repo := newTestRepoWithPeriod(t)
	repo.AddGoal("売上目標", 5, "", "")

	if err := repo.ImportData("{not json"); !errors.Is(err, util.ErrParse) {
		t.Fatalf("ImportData error = %v, want ErrParse", err)
	}
	if len(repo.Goals()) != 1 {
		t.Errorf("goals after failed import = %d, want 1", len(repo.Goals()))
	}
}

func TestCorruptFileFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mbo_data.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	repo := NewMBORepository(docstore.New(path))
	if got := repo.CurrentPeriodName(); got != "" {
		t.Errorf("CurrentPeriodName = %q, want empty", got)
	}
	if names := repo.PeriodNames(); len(names) != 0 {
		t.Errorf("PeriodNames = %v, want empty", names)
	}
}
