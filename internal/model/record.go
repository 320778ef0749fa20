// Package model 包含了应用的数据模型定义。
package model

// Record 代表一次已持久化的命名结果及其原始输入。
// 记录一经写入不可变，没有更新和删除操作。
type Record struct {
	// ID 由创建时刻的毫秒时间戳派生，既是标识也是排序键。
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Result      string `json:"result"`
	// CreatedAt 为 RFC 3339 格式的持久化时间。
	CreatedAt string `json:"createdAt"`
}
