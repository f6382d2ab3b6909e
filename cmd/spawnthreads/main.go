// 命令行入口：论坛讨论帖生成。
// 用法：spawnthreads [flags] [daily|weekly|monthly|all]
// - 每日帖进打卡论坛，周/月帖共用回顾论坛
// - 任一种类失败不影响其余种类，但会让进程以非零退出
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"go-kingdom-missions/internal/config"
	"go-kingdom-missions/internal/discord"
	"go-kingdom-missions/internal/logx"
	"go-kingdom-missions/internal/model"
	"go-kingdom-missions/internal/period"
	"go-kingdom-missions/internal/report"
	"go-kingdom-missions/internal/spawn"
)

func main() {
	var (
		configPath  = flag.String("config", "settings.yaml", "path to settings.yaml (optional)")
		embedOnly   = flag.Bool("embed-only", true, "omit plain content, post the embed card only")
		noEmbedOnly = flag.Bool("no-embed-only", false, "include plain content alongside the embed")
		outPath     = flag.String("out", "", "also write the RESULTS json to this file")
	)
	flag.Parse()

	// .env 仅本地开发使用，缺失不报错
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.ValidateForums(); err != nil {
		log.Fatalf("load config: %v", err)
	}
	logx.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogLocale, cfg.LogColor)

	kinds := model.ParseKinds(flag.Arg(0))
	if *noEmbedOnly {
		*embedOnly = false
	}

	res, err := period.New(cfg.Timezone, nil)
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}
	session, err := discord.New(cfg.Token)
	if err != nil {
		log.Fatalf("discord session: %v", err)
	}

	ctx := context.Background()
	// 启动自检：确认凭证有效，顺带记录机器人身份
	me, err := session.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		logx.Errorf("whoami 失败：%v", err)
		os.Exit(1)
	}
	logx.Infof("BOT：%s %s", me.Username, me.ID)

	results := spawn.New(cfg, session, res, nil).Run(ctx, kinds, *embedOnly)
	if err := report.Write(os.Stdout, results); err != nil {
		logx.Warnf("输出结果失败：%v", err)
	}
	if *outPath != "" {
		if err := report.Export(*outPath, results); err != nil {
			logx.Warnf("导出结果失败：%v", err)
		}
	}

	// 退出码是自动化方唯一依赖的信号：有任一种类失败即非零
	for _, r := range results {
		if r.Error != "" {
			os.Exit(1)
		}
	}
}
