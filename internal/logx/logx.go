// 包 logx 是对标准库 slog 的薄封装：
// - 级别/格式/语言/颜色可配置，遵循 NO_COLOR
// - pretty 形态提供中文标签（[调试]/[信息]/[警告]/[错误]）
// - 日志一律写标准错误：标准输出留给 RESULTS 文档，供自动化方采集
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Init 根据 level/format/locale/colorMode 初始化全局日志器。
func Init(level, format, locale, colorMode string) {
	lv := parseLevel(level)
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lv})
	case "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv})
	default:
		handler = NewPrettyHandler(os.Stderr, lv, locale, colorMode)
	}
	slog.SetDefault(slog.New(handler))
}

// parseLevel 将字符串级别解析为 slog 级别。
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "silent", "off":
		return slog.Level(100) // silence all
	default:
		return slog.LevelInfo
	}
}

// 便捷函数：格式化并按级别输出
func Debugf(format string, v ...any) { slog.Debug(fmt.Sprintf(format, v...)) }
func Infof(format string, v ...any)  { slog.Info(fmt.Sprintf(format, v...)) }
func Warnf(format string, v ...any)  { slog.Warn(fmt.Sprintf(format, v...)) }
func Errorf(format string, v ...any) { slog.Error(fmt.Sprintf(format, v...)) }

// PrettyHandler 为人读输出：时间 + 本地化等级标签 + 消息 + 展平属性。
type PrettyHandler struct {
	w     io.Writer
	min   slog.Level
	zh    bool
	color bool
	mu    *sync.Mutex
	attrs []slog.Attr
}

// NewPrettyHandler 创建美化 Handler；locale 以 zh 开头时使用中文标签。
func NewPrettyHandler(w io.Writer, min slog.Level, locale, colorMode string) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	return &PrettyHandler{
		w:     w,
		min:   min,
		zh:    strings.HasPrefix(strings.ToLower(locale), "zh"),
		color: shouldColor(w, colorMode),
		mu:    &sync.Mutex{},
	}
}

// Enabled 根据配置的最低级别判定是否输出。
func (h *PrettyHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.min && h.min < 100
}

// Handle 格式化一条记录并原子写出。
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var buf bytes.Buffer
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(ts.Format("2006-01-02 15:04:05"))
	buf.WriteByte(' ')
	buf.WriteString(h.label(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	attrs := append([]slog.Attr(nil), h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteByte('=')
		buf.WriteString(a.Value.String())
	}
	buf.WriteByte('\n')
	_, err := h.w.Write(buf.Bytes())
	return err
}

// WithAttrs 附加属性（本项目未大量使用）。
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &cp
}

// WithGroup 分组对人读输出没有意义，原样返回。
func (h *PrettyHandler) WithGroup(string) slog.Handler { return h }

// label 返回带可选颜色的本地化等级标签。
func (h *PrettyHandler) label(l slog.Level) string {
	var s, code string
	switch {
	case l >= slog.LevelError:
		s, code = "[ERROR]", "31"
		if h.zh {
			s = "[错误]"
		}
	case l >= slog.LevelWarn:
		s, code = "[WARN]", "33"
		if h.zh {
			s = "[警告]"
		}
	case l >= slog.LevelInfo:
		s, code = "[INFO]", "36"
		if h.zh {
			s = "[信息]"
		}
	default:
		s, code = "[DEBUG]", "90"
		if h.zh {
			s = "[调试]"
		}
	}
	if !h.color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// shouldColor 判断是否启用颜色：遵循 LOG_COLOR 设置与 NO_COLOR 环境变量。
func shouldColor(w io.Writer, mode string) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "auto":
		// 简单的 TTY 检测：仅在字符设备上启用彩色输出
		if f, ok := w.(*os.File); ok {
			if fi, err := f.Stat(); err == nil {
				return (fi.Mode() & os.ModeCharDevice) != 0
			}
		}
		return false
	default:
		return false
	}
}
