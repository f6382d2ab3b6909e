// 包 post 负责单频道每日任务的主流程编排：
// 解析周期 → 最近消息查重 → 选题 → 发嵌入卡片 → 补加 ✅ 完成反应。
package post

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"go-kingdom-missions/internal/bank"
	"go-kingdom-missions/internal/compose"
	"go-kingdom-missions/internal/config"
	"go-kingdom-missions/internal/detect"
	"go-kingdom-missions/internal/discord"
	"go-kingdom-missions/internal/logx"
	"go-kingdom-missions/internal/model"
	"go-kingdom-missions/internal/period"
)

// Poster 每日任务执行器，持有配置/远端接口/周期解析器/选题随机源。
type Poster struct {
	cfg  *config.Config
	api  discord.API
	res  *period.Resolver
	pick bank.Pick
}

// New 创建 Poster；pick 为 nil 时使用真实随机。
func New(cfg *config.Config, api discord.API, res *period.Resolver, pick bank.Pick) *Poster {
	return &Poster{cfg: cfg, api: api, res: res, pick: pick}
}

// Run 执行一次发帖；force 为 true 时完全不查重、无条件创建。
// 返回 error 表示本次运行失败（列消息或创建消息失败）；
// 干净跳过不是失败，通过结果里的 Skipped 表达。
func (p *Poster) Run(ctx context.Context, force bool) (*model.PostResult, error) {
	pd := p.res.Resolve()

	if !force {
		recent, err := p.api.ChannelMessages(p.cfg.MissionsChannelID, p.cfg.RecentLimit, "", "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("list recent messages: %w", err)
		}
		if dup := detect.MissionMessage(recent, pd.DayLabel, pd.DayKey); dup != nil {
			logx.Infof("今日任务已存在：key=%s 消息=%s（可用 --force 强制重发）", pd.DayKey, dup.ID)
			return &model.PostResult{Skipped: true, Reason: "duplicate_recent", MessageID: dup.ID, Key: pd.DayKey}, nil
		}
	}

	bk, fellBack := bank.LoadOrFallback(p.cfg.BankPath)
	if fellBack {
		logx.Warnf("题库不可用，回退内置题库：%s", p.cfg.BankPath)
	}
	sel := bk.Select(pd.DayOfYear, p.pick)

	msg, err := p.api.ChannelMessageSendComplex(p.cfg.MissionsChannelID, compose.DailyMission(pd, sel.Text), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("create mission message: %w", err)
	}
	// 完成反应属尽力而为：失败只记警告，不影响本次运行结果
	if err := p.api.MessageReactionAdd(p.cfg.MissionsChannelID, msg.ID, "✅", discordgo.WithContext(ctx)); err != nil {
		logx.Warnf("添加 ✅ 反应失败：%v", err)
	}
	logx.Infof("已发布每日任务：key=%s 消息=%s", pd.DayKey, msg.ID)
	return &model.PostResult{OK: true, MessageID: msg.ID, Key: pd.DayKey}, nil
}
