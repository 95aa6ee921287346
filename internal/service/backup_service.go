package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mbo_backend/internal/repository"
)

// BackupService 整个文档的JSON导出/导入，以及带时间戳的备份上传
type BackupService struct {
	repo    *repository.MBORepository
	storage *StorageService
}

func NewBackupService(repo *repository.MBORepository, storage *StorageService) *BackupService {
	return &BackupService{repo: repo, storage: storage}
}

func (s *BackupService) Export() (string, error) {
	return s.repo.ExportData()
}

// Import 解析失败时现有数据保持不变
func (s *BackupService) Import(jsonText string) error {
	return s.repo.ImportData(jsonText)
}

// Upload 将当前文档作为 mbo_backup_<时刻>.json 上传到存储
func (s *BackupService) Upload(ctx context.Context) (string, error) {
	data, err := s.repo.ExportData()
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("mbo_backup_%s.json", time.Now().Format("20060102_150405"))
	reader := strings.NewReader(data)
	return s.storage.Upload(ctx, filename, reader, int64(len(data)), "application/json")
}
