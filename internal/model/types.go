// 包 model 定义导出的数据模型（周期种类/执行结果）。
package model

import "strings"

// Kind 表示发帖周期种类。
type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
)

// ParseKinds 解析命令行的周期参数：
// 空值回退 daily，all 展开为三种；未知取值原样下传，由执行层记录为该种类的错误。
func ParseKinds(arg string) []Kind {
	switch s := strings.ToLower(strings.TrimSpace(arg)); s {
	case "", "daily":
		return []Kind{KindDaily}
	case "all":
		return []Kind{KindDaily, KindWeekly, KindMonthly}
	default:
		return []Kind{Kind(s)}
	}
}

// ThreadResult 为单个周期种类的执行结果（RESULTS 输出中的一项）。
type ThreadResult struct {
	OK       bool   `json:"ok"`
	Skipped  bool   `json:"skipped,omitempty"`
	Reason   string `json:"reason,omitempty"`
	ThreadID string `json:"thread_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Error    string `json:"error,omitempty"`
}

// PostResult 为单频道每日任务的执行结果。
type PostResult struct {
	OK        bool   `json:"ok"`
	Skipped   bool   `json:"skipped,omitempty"`
	Reason    string `json:"reason,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Key       string `json:"key"`
}
