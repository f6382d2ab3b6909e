// 包 period 负责把当前时刻换算为固定时区下的周期信息：
// - 日键（可排序的 YYYY-MM-DD）与日标签（9 Nov 2025）
// - ISO 周序号及其所属 ISO 年（周从周一开始，含首个周四的那周为第 1 周）
// - 月标签与一年中的第几天
// 无论宿主机时区如何，所有换算都在配置的时区内进行。
package period

import (
	"fmt"
	"time"
)

// Clock 提供当前时刻，测试可注入固定时间。
type Clock interface {
	Now() time.Time
}

// SystemClock 使用真实壁钟。
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Period 为一次解析得到的全部周期信息，整个运行期间只计算一次、只读传递。
type Period struct {
	DayKey     string // 2025-11-09
	DayLabel   string // 9 Nov 2025
	ISOWeek    int
	ISOYear    int
	MonthLabel string // November 2025
	DayOfYear  int    // 1 起算
	Now        time.Time
}

// Resolver 为固定时区的周期解析器。
type Resolver struct {
	loc   *time.Location
	clock Clock
}

// New 加载时区并创建解析器；时区库缺失属环境致命错误，直接上抛。
func New(tz string, clock Clock) (*Resolver, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", tz, err)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{loc: loc, clock: clock}, nil
}

// Resolve 将当前时刻换算为周期信息。
// 同一自然日内多次调用必须得到相同的日键与日标签。
func (r *Resolver) Resolve() Period {
	now := r.clock.Now().In(r.loc)
	isoYear, isoWeek := now.ISOWeek()
	return Period{
		DayKey:     now.Format("2006-01-02"),
		DayLabel:   now.Format("2 Jan 2006"),
		ISOWeek:    isoWeek,
		ISOYear:    isoYear,
		MonthLabel: now.Format("January 2006"),
		DayOfYear:  now.YearDay(),
		Now:        now,
	}
}
