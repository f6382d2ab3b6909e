// 包 compose 负责组装发往 Discord 的创建载荷（纯函数，不做网络调用）：
// - 单频道每日任务的嵌入卡片
// - 各周期种类的帖子名称、标题与正文文案
// 同样的输入必须得到同样的载荷，远端行为不影响组装结果。
package compose

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"go-kingdom-missions/internal/bank"
	"go-kingdom-missions/internal/model"
	"go-kingdom-missions/internal/period"
)

const (
	// BrandOrange 为嵌入卡片的品牌色。
	BrandOrange = 0xFF7A00
	// FooterBrand 为嵌入卡片页脚的固定品牌串。
	FooterBrand = "Richard • Kingdom HQ"
)

// 每日帖正文固定附带的早晚打卡说明。
const checkInGuide = "🌅 Morning: post your ONE focus for today.\n🌙 Night: reply with ✅ and one lesson learned."

// 各周期种类的嵌入标题。
var titleByKind = map[model.Kind]string{
	model.KindDaily:   "🎯 Daily Check-In",
	model.KindWeekly:  "🧭 Weekly Reflection",
	model.KindMonthly: "🗓️ Monthly Review",
}

// 周报/月报使用的固定提示语；每日帖由题库轮换生成，不在此表内。
var promptByKind = map[model.Kind]string{
	model.KindWeekly:  "**Weekly reflection**\n1) What went well?\n2) What didn’t?\n3) Plan for next week?",
	model.KindMonthly: "**Monthly review**\n• Top 3 wins\n• 1 bottleneck to fix\n• Theme for next month",
}

// suppressAll 无条件禁止 @ 解析，避免正文里的写法误触通知。
func suppressAll() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
}

// DailyMission 组装单频道每日任务消息：只有嵌入卡片，不带纯文本正文，
// 页脚同时携带品牌串与日键（查重的次要信号）。
func DailyMission(p period.Period, mission string) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎯 Daily Mission — %s", p.DayLabel),
		Description: mission,
		Color:       BrandOrange,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%s • %s", FooterBrand, p.DayKey)},
		Timestamp:   p.Now.UTC().Format(time.RFC3339),
	}
	return &discordgo.MessageSend{
		Embeds:          []*discordgo.MessageEmbed{embed},
		AllowedMentions: suppressAll(),
	}
}

// ThreadName 计算各周期种类的帖子名。
// 同一周期内重复运行必须得到同一名字：名字即论坛侧的幂等键。
func ThreadName(k model.Kind, p period.Period) string {
	switch k {
	case model.KindDaily:
		return fmt.Sprintf("Mission — %s", p.DayLabel)
	case model.KindWeekly:
		return fmt.Sprintf("Week %d — %d", p.ISOWeek, p.ISOYear)
	case model.KindMonthly:
		return fmt.Sprintf("Monthly — %s", p.MonthLabel)
	}
	return ""
}

// ThreadBody 计算帖子首条消息的正文：
// 每日帖 = 选中的任务 + 固定打卡说明 +（选中分组时）主题行；周/月为固定提示语。
func ThreadBody(k model.Kind, sel bank.Selection) string {
	if k != model.KindDaily {
		return promptByKind[k]
	}
	body := sel.Text + "\n\n" + checkInGuide
	if sel.Group != "" {
		body += fmt.Sprintf("\n\nTheme: %s", sel.Group)
	}
	return body
}

// ForumThread 组装论坛帖创建载荷：帖子名 + 首条消息。
// 默认只发嵌入卡片；embedOnly 关闭时在嵌入之外附同文的纯文本正文。
func ForumThread(k model.Kind, p period.Period, body string, embedOnly bool) (*discordgo.ThreadStart, *discordgo.MessageSend) {
	embed := &discordgo.MessageEmbed{
		Title:       titleByKind[k],
		Description: body,
		Color:       BrandOrange,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterBrand},
		Timestamp:   p.Now.UTC().Format(time.RFC3339),
	}
	msg := &discordgo.MessageSend{
		Embeds:          []*discordgo.MessageEmbed{embed},
		AllowedMentions: suppressAll(),
	}
	if !embedOnly {
		msg.Content = body
	}
	thread := &discordgo.ThreadStart{
		Name:        ThreadName(k, p),
		AppliedTags: []string{},
	}
	return thread, msg
}
