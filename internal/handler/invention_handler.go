// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anjulbhatia/doof-preview/internal/service"
	"github.com/anjulbhatia/doof-preview/pkg/log"
)

// InventionHandler 负责处理发明命名相关的 API 请求。
type InventionHandler struct {
	inventionService service.InventionService
}

// NewInventionHandler 创建一个新的 InventionHandler 实例。
func NewInventionHandler(inventionService service.InventionService) *InventionHandler {
	return &InventionHandler{inventionService: inventionService}
}

// GenerateRequest 定义了生成 API 的请求体结构。
type GenerateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Generate 处理生成请求：校验输入、调用生成服务并返回落盘后的记录。
func (h *InventionHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Generate: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required"})
		return
	}

	// 校验先于任何副作用：两个字段去除空白后都不能为空
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required"})
		return
	}

	record, err := h.inventionService.Generate(c.Request.Context(), title, description)
	if err != nil {
		if errors.Is(err, service.ErrGenerationUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Generation service is not configured"})
			return
		}
		log.Errorf("Generate: 生成或持久化失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Failed to generate name",
			"detail": err.Error(),
		})
		return
	}

	log.Infof("Generate: 新记录已创建, id=%s", record.ID)
	c.JSON(http.StatusOK, record)
}

// History 返回全部历史记录，最新在前。
func (h *InventionHandler) History(c *gin.Context) {
	records, err := h.inventionService.History(c.Request.Context())
	if err != nil {
		log.Errorf("History: 读取历史失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, records)
}
