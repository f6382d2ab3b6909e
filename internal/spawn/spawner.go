// 包 spawn 负责论坛帖的主流程编排：
// 对每个请求的周期种类独立执行 读频道 → 校验论坛类型 → 列活跃帖 → 查重 → 建帖，
// 单个种类失败只记入该种类的结果，不中断其余种类。
package spawn

import (
	"context"
	"fmt"
	"time"

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

// Spawner 论坛帖执行器，持有配置/远端接口/周期解析器/选题随机源。
type Spawner struct {
	cfg   *config.Config
	api   discord.API
	res   *period.Resolver
	pick  bank.Pick
	delay time.Duration // 连续建帖之间的固定停顿，防止触发限流
}

// New 创建 Spawner；pick 为 nil 时使用真实随机。
func New(cfg *config.Config, api discord.API, res *period.Resolver, pick bank.Pick) *Spawner {
	return &Spawner{
		cfg:   cfg,
		api:   api,
		res:   res,
		pick:  pick,
		delay: time.Duration(cfg.CreateDelayMS) * time.Millisecond,
	}
}

// forumFor 返回种类对应的论坛频道；周报与月报共用回顾论坛。
func (s *Spawner) forumFor(k model.Kind) string {
	switch k {
	case model.KindDaily:
		return s.cfg.ForumDailyID
	case model.KindWeekly, model.KindMonthly:
		return s.cfg.ForumReflectID
	}
	return ""
}

// Run 按请求顺序逐一处理各周期种类并汇总结果。
// 周期信息只解析一次，三种帖共享同一组键与标签。
func (s *Spawner) Run(ctx context.Context, kinds []model.Kind, embedOnly bool) map[model.Kind]*model.ThreadResult {
	pd := s.res.Resolve()
	results := make(map[model.Kind]*model.ThreadResult, len(kinds))
	for i, k := range kinds {
		results[k] = s.spawnOne(ctx, k, pd, embedOnly)
		if results[k].OK && i < len(kinds)-1 {
			s.pause(ctx)
		}
	}
	return results
}

// spawnOne 处理单个周期种类，任何失败都收敛为该种类的错误结果。
func (s *Spawner) spawnOne(ctx context.Context, k model.Kind, pd period.Period, embedOnly bool) *model.ThreadResult {
	forumID := s.forumFor(k)
	if forumID == "" {
		return &model.ThreadResult{Error: fmt.Sprintf("no forum for kind %s", k)}
	}

	ch, err := s.api.Channel(forumID, discordgo.WithContext(ctx))
	if err != nil {
		return &model.ThreadResult{Error: fmt.Sprintf("read channel %s: %v", forumID, err)}
	}
	if ch.Type != discordgo.ChannelTypeGuildForum {
		return &model.ThreadResult{Error: fmt.Sprintf("channel %s is not a forum (type=%d)", forumID, ch.Type)}
	}
	logx.Infof("[%s] 论坛：%s（%s）guild=%s", k, ch.Name, forumID, ch.GuildID)

	active, err := s.api.GuildThreadsActive(ch.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return &model.ThreadResult{Error: fmt.Sprintf("list active threads: %v", err)}
	}
	name := compose.ThreadName(k, pd)
	if dup := detect.ActiveThread(active.Threads, forumID, name); dup != nil {
		logx.Infof("[%s] 已存在同名帖 -> %s", k, dup.ID)
		return &model.ThreadResult{Skipped: true, Reason: "duplicate_active", ThreadID: dup.ID, Name: name}
	}

	thread, msg := compose.ForumThread(k, pd, compose.ThreadBody(k, s.selectFor(k, pd)), embedOnly)
	created, err := s.api.ForumThreadStartComplex(forumID, thread, msg, discordgo.WithContext(ctx))
	if err != nil {
		return &model.ThreadResult{Error: fmt.Sprintf("create thread: %v", err)}
	}
	logx.Infof("[%s] 已建帖 -> %s", k, created.ID)
	return &model.ThreadResult{OK: true, ThreadID: created.ID, Name: name}
}

// selectFor 仅每日帖走题库轮换；周/月用固定提示语，返回零值 Selection。
func (s *Spawner) selectFor(k model.Kind, pd period.Period) bank.Selection {
	if k != model.KindDaily {
		return bank.Selection{}
	}
	bk, fellBack := bank.LoadOrFallback(s.cfg.BankPath)
	if fellBack {
		logx.Warnf("题库不可用，回退内置题库：%s", s.cfg.BankPath)
	}
	return bk.Select(pd.DayOfYear, s.pick)
}

// pause 固定停顿，ctx 取消时提前返回。
func (s *Spawner) pause(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(s.delay):
	}
}
