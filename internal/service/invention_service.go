// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anjulbhatia/doof-preview/internal/model"
	"github.com/anjulbhatia/doof-preview/internal/repository"
	"github.com/anjulbhatia/doof-preview/pkg/llm"
)

// ErrGenerationUnavailable 表示生成能力未配置（缺少 API Key）。
// 调用方据此区分"未配置"与"调用失败"。
var ErrGenerationUnavailable = errors.New("generation service is not configured")

// DefaultName 是外部服务返回空文本时的兜底名称。
const DefaultName = "The Nameless-inator"

// InventionService 定义了发明命名的操作接口。
type InventionService interface {
	// Generate 校验通过的输入经外部模型生成名称并持久化，返回落盘后的记录。
	Generate(ctx context.Context, title, description string) (*model.Record, error)
	// History 返回全部历史记录，最新在前。
	History(ctx context.Context) ([]model.Record, error)
	// Available 报告生成能力是否已配置。
	Available() bool
}

type inventionService struct {
	llmClient  llm.Client
	recordRepo repository.RecordRepository
	available  bool
}

// NewInventionService 创建一个新的 InventionService 实例。
func NewInventionService(llmClient llm.Client, recordRepo repository.RecordRepository, available bool) InventionService {
	return &inventionService{
		llmClient:  llmClient,
		recordRepo: recordRepo,
		available:  available,
	}
}

// Generate 协调生成与持久化流程。
// 生成调用失败时直接返回错误，不会产生孤儿记录。
func (s *inventionService) Generate(ctx context.Context, title, description string) (*model.Record, error) {
	if !s.available {
		return nil, ErrGenerationUnavailable
	}

	text, err := s.llmClient.Complete(ctx, buildMessages(title, description))
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	name := strings.TrimSpace(text)
	if name == "" {
		// 外部服务偶尔返回空 choices，此时退回固定名称而不是报错
		name = DefaultName
	}

	record, err := s.recordRepo.Save(title, description, name)
	if err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}
	return record, nil
}

// History 返回已持久化的全部记录。
func (s *inventionService) History(ctx context.Context) ([]model.Record, error) {
	return s.recordRepo.ListAll()
}

// Available 报告生成能力是否已配置。
func (s *inventionService) Available() bool {
	return s.available
}

// buildMessages 根据标题和描述构建固定的提示消息。
// 要求名称以 -inator 结尾，并保持夸张的疯狂科学家语气。
func buildMessages(title, description string) []llm.Message {
	systemMsg := "You are a melodramatic evil scientist who names every invention with theatrical flair. " +
		"Every name you produce MUST end with the suffix \"-inator\". " +
		"Reply with the name only, no explanation."
	userMsg := fmt.Sprintf("Name this invention.\nTitle: %s\nDescription: %s", title, description)
	return []llm.Message{
		{Role: "system", Content: systemMsg},
		{Role: "user", Content: userMsg},
	}
}
