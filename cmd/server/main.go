// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anjulbhatia/doof-preview/internal/config"
	"github.com/anjulbhatia/doof-preview/internal/handler"
	"github.com/anjulbhatia/doof-preview/internal/middleware"
	"github.com/anjulbhatia/doof-preview/internal/repository"
	"github.com/anjulbhatia/doof-preview/internal/service"
	"github.com/anjulbhatia/doof-preview/pkg/llm"
	"github.com/anjulbhatia/doof-preview/pkg/log"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	if cfg.LLM.APIKey == "" {
		log.Warnf("未配置 LLM API Key，生成接口将返回 503")
	}

	// 3. 初始化 Repository 与 Service (依赖注入)
	recordRepo := repository.NewRecordRepository(cfg.Storage.DataDir)
	llmClient := llm.NewClient(cfg.LLM)
	inventionService := service.NewInventionService(llmClient, recordRepo, cfg.LLM.APIKey != "")

	// 4. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	// 添加我们自定义的请求 ID、日志中间件和 Gin 的 Recovery 中间件
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())

	// 5. 注册路由
	r.StaticFile("/", "./web/index.html")
	r.GET("/health", handler.NewHealthHandler(inventionService, cfg.Storage.DataDir).Health)

	api := r.Group("/api")
	{
		inventionHandler := handler.NewInventionHandler(inventionService)
		api.POST("/generate", inventionHandler.Generate)
		api.GET("/history", inventionHandler.History)
	}

	// 6. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已优雅关闭")
}
