package docstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrNotExist 数据文件不存在
var ErrNotExist = errors.New("data file does not exist")

// Store 单文件JSON文档存储。所有变更都整体写回，不做局部更新
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// LoadRaw 读取整个数据文件。文件不存在返回 ErrNotExist，
// 内容是否可解析由调用方判断
func (s *Store) LoadRaw() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

// Save 将文档以UTF-8缩进JSON整体写回磁盘
func (s *Store) Save(doc interface{}) error {
	data, err := MarshalIndent(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
	}

	return os.WriteFile(s.path, data, 0644)
}

// MarshalIndent 与数据文件相同格式的序列化（两空格缩进，不转义非ASCII）
func MarshalIndent(doc interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return data, nil
}
