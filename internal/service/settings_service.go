package service

import (
	"strings"

	"mbo_backend/internal/repository"
)

// SettingsService 文档内设置（报告生成用API密钥）的读写
type SettingsService struct {
	repo *repository.MBORepository
}

func NewSettingsService(repo *repository.MBORepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) SetAPIKey(key string) error {
	return s.repo.SetAPIKey(key)
}

func (s *SettingsService) HasAPIKey() bool {
	return s.repo.APIKey() != ""
}

// MaskedAPIKey 只露出末尾4位
func (s *SettingsService) MaskedAPIKey() string {
	key := s.repo.APIKey()
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
