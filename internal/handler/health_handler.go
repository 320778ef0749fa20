package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anjulbhatia/doof-preview/internal/service"
)

// HealthHandler 提供服务状态探测接口。
type HealthHandler struct {
	inventionService service.InventionService
	storageLocation  string
}

// NewHealthHandler 创建一个新的 HealthHandler 实例。
func NewHealthHandler(inventionService service.InventionService, storageLocation string) *HealthHandler {
	return &HealthHandler{
		inventionService: inventionService,
		storageLocation:  storageLocation,
	}
}

// Health 返回服务状态、生成能力是否可用以及存储位置。
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "ok",
		"generationAvailable": h.inventionService.Available(),
		"storageLocation":     h.storageLocation,
	})
}
