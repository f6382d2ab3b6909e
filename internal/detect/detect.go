// 包 detect 负责“本周期是否已发过”的只读判定，调用方据此跳过或创建。
// 查询与创建之间没有互斥：两个并发进程可能都判定未发而各发一帖。
// 该工作流假定外部调度器每周期只触发一次，不在此处加锁。
package detect

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MissionMessage 在最近消息窗口中寻找本周期的每日任务消息：
// 作者是机器人、带嵌入卡片，且首个嵌入的标题含日标签或页脚含日键即命中。
// 子串匹配是有意放宽的，标签格式轻微漂移时仍能识别；窗口外的旧帖查不到，属已知限制。
func MissionMessage(msgs []*discordgo.Message, label, key string) *discordgo.Message {
	for _, m := range msgs {
		if m == nil || m.Author == nil || !m.Author.Bot || len(m.Embeds) == 0 {
			continue
		}
		e := m.Embeds[0]
		if e == nil {
			continue
		}
		if strings.Contains(e.Title, label) {
			return m
		}
		if e.Footer != nil && strings.Contains(e.Footer.Text, key) {
			return m
		}
	}
	return nil
}

// ActiveThread 在活跃帖列表中寻找目标论坛下的同名帖。
// 名称必须精确相等（帖子名本身即幂等键），父频道必须是目标论坛。
func ActiveThread(threads []*discordgo.Channel, forumID, name string) *discordgo.Channel {
	for _, t := range threads {
		if t != nil && t.ParentID == forumID && t.Name == name {
			return t
		}
	}
	return nil
}
