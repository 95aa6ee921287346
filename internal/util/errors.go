package util

import "errors"

var (
	ErrPeriodNameEmpty = errors.New("期間名を入力してください")
	ErrPeriodExists    = errors.New("期間名が既に存在します")
	ErrPeriodNotFound  = errors.New("期間が存在しません")
	ErrNoCurrentPeriod = errors.New("評価期間が選択されていません")
	ErrGoalNotFound    = errors.New("目標が存在しません")
	ErrItemNotFound    = errors.New("達成項目が存在しません")
	ErrPersistence     = errors.New("データ保存に失敗しました")
	ErrParse           = errors.New("JSONの解析に失敗しました")
	ErrLoginFailed     = errors.New("ユーザー名またはパスワードが違います")
)
