// 包 report 负责输出运行结果：RESULTS 文档打印到标准输出，
// 也可按需落盘为 JSON 文件。自动化方以退出码为准，文档仅供排查。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Write 以缩进 JSON 打印 RESULTS 文档。
func Write(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	_, err = fmt.Fprintf(w, "RESULTS: %s\n", b)
	return err
}

// Export 将 RESULTS 文档写入文件（带缩进，便于人工查看）。
func Export(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json to %s: %w", path, err)
	}
	return nil
}
