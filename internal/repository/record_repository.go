// Package repository 提供了数据访问层的实现。
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/anjulbhatia/doof-preview/internal/model"
	"github.com/anjulbhatia/doof-preview/pkg/log"
)

// RecordRepository 定义了命名记录的持久化操作接口。
type RecordRepository interface {
	// Save 构造一条新记录并落盘，返回内存中的记录。
	Save(title, description, result string) (*model.Record, error)
	// ListAll 返回全部记录，按创建时间从新到旧排序。
	ListAll() ([]model.Record, error)
}

type fileRecordRepository struct {
	dataDir string
}

// NewRecordRepository 创建一个以目录为后端的 RecordRepository 实例。
// 每条记录对应目录下的一个 JSON 文件，文件名即记录 ID。
func NewRecordRepository(dataDir string) RecordRepository {
	return &fileRecordRepository{dataDir: dataDir}
}

// Save 以毫秒时间戳为 ID 创建记录并写入 <id>.json。
// 先写临时文件再原子重命名，避免写一半的文件被 ListAll 读到。
func (r *fileRecordRepository) Save(title, description, result string) (*model.Record, error) {
	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	now := time.Now()
	record := &model.Record{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Title:       title,
		Description: description,
		Result:      result,
		CreatedAt:   now.Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	filePath := filepath.Join(r.dataDir, record.ID+".json")
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write record file: %w", err)
	}
	if err := os.Rename(tempPath, filePath); err != nil {
		return nil, fmt.Errorf("failed to rename record file: %w", err)
	}

	return record, nil
}

// ListAll 枚举目录下的全部记录文件并反序列化。
// 目录不可读时返回空列表而不是错误：列表读取路径刻意采用 fail-open 策略。
func (r *fileRecordRepository) ListAll() ([]model.Record, error) {
	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		log.Warnf("ListAll: 创建数据目录失败: %v", err)
		return []model.Record{}, nil
	}

	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		log.Warnf("ListAll: 读取数据目录失败: %v", err)
		return []model.Record{}, nil
	}

	records := make([]model.Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(r.dataDir, entry.Name()))
		if err != nil {
			log.Warnf("ListAll: 读取记录文件失败: %s, err=%v", entry.Name(), err)
			continue
		}
		var record model.Record
		if err := json.Unmarshal(content, &record); err != nil {
			log.Warnf("ListAll: 解析记录文件失败: %s, err=%v", entry.Name(), err)
			continue
		}
		records = append(records, record)
	}

	// ID 为毫秒时间戳，数值降序即最新在前
	sort.Slice(records, func(i, j int) bool {
		return numericID(records[i].ID) > numericID(records[j].ID)
	})
	return records, nil
}

func numericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
