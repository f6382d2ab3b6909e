// 包 bank 负责任务题库：
// - 读取 bank.json（新版 groups 分组或旧版 daily 扁平列表）
// - 按一年中的第几天轮换分组（确定性），组内随机挑选
// - 文件缺失/损坏/为空时回退到内置题库，调用方据返回值决定是否告警
package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
)

// Pick 从 n 个候选中选出一个下标，测试可注入固定实现。
type Pick func(n int) int

// RandomPick 为默认实现：math/rand 均匀随机。
func RandomPick(n int) int { return rand.Intn(n) }

// Bank 为题库。扁平列表统一承载为单个无名组，便于同一条选题路径。
type Bank struct {
	groups map[string][]string
	order  []string // 分组轮换顺序（与文件书写顺序一致，空组不参与）
	flat   bool
}

// Selection 为一次选题结果；Group 为空表示没有组归属（扁平题库或内置兜底）。
type Selection struct {
	Text  string
	Group string
}

// 内置兜底题库，保证永不为空。
var builtin = []string{
	"What’s your ONE focus today? React ✅ when done.",
	"Do a 5-minute task you’ve been avoiding. React ✅ when complete.",
	"List your top 3 priorities for today. Mark ✅ after finishing #1.",
	"Eliminate ONE distraction for the next hour. React ✅ to commit.",
	"Do a 2-minute workspace reset right now. React ✅ when done.",
}

// bankFile 对应 bank.json 的两种形态；groups 以原始字节保留以便按书写顺序解析。
type bankFile struct {
	Daily  []string        `json:"daily"`
	Groups json.RawMessage `json:"groups"`
}

// Load 读取并解析题库文件；缺失、损坏或没有可用条目时返回错误。
func Load(path string) (*Bank, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}
	var f bankFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("unmarshal bank %s: %w", path, err)
	}
	if len(f.Groups) > 0 {
		order, groups, err := parseGroups(f.Groups)
		if err != nil {
			return nil, fmt.Errorf("parse groups in %s: %w", path, err)
		}
		if len(order) == 0 {
			return nil, errors.New("all mission groups are empty")
		}
		return &Bank{groups: groups, order: order}, nil
	}
	return fromFlat(f.Daily)
}

// Fallback 返回内置题库。
func Fallback() *Bank {
	b, _ := fromFlat(builtin)
	return b
}

// LoadOrFallback 尝试读取文件，任何失败都回退内置题库；
// 第二个返回值为 true 表示发生了回退。
func LoadOrFallback(path string) (*Bank, bool) {
	b, err := Load(path)
	if err != nil {
		return Fallback(), true
	}
	return b, false
}

// parseGroups 按文件中键的出现顺序解析 groups 对象，
// 轮换顺序必须与作者书写顺序一致，encoding/json 的 map 不保序，故手动走 token。
func parseGroups(raw json.RawMessage) ([]string, map[string][]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, errors.New("groups must be a JSON object")
	}
	var order []string
	groups := map[string][]string{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, errors.New("group id must be a string")
		}
		var list []string
		if err := dec.Decode(&list); err != nil {
			return nil, nil, fmt.Errorf("group %s: %w", key, err)
		}
		groups[key] = list
		if len(list) > 0 {
			order = append(order, key)
		}
	}
	return order, groups, nil
}

func fromFlat(list []string) (*Bank, error) {
	if len(list) == 0 {
		return nil, errors.New("empty mission list")
	}
	return &Bank{groups: map[string][]string{"": list}, order: []string{""}, flat: true}, nil
}

// Groups 返回参与轮换的分组名（按轮换顺序），便于调试输出。
func (b *Bank) Groups() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Select 选题：dayOfYear mod 组数 决定分组（逐日确定），组内由 pick 随机决定。
func (b *Bank) Select(dayOfYear int, pick Pick) Selection {
	if pick == nil {
		pick = RandomPick
	}
	g := b.order[dayOfYear%len(b.order)]
	list := b.groups[g]
	sel := Selection{Text: list[pick(len(list))]}
	if !b.flat {
		sel.Group = g
	}
	return sel
}
