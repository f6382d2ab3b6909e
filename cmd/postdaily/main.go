// 命令行入口：单频道每日任务。
// - 读取 .env / settings.yaml / 环境变量构造配置
// - 最近消息查重后发布嵌入卡片并补加 ✅ 反应
// - 已存在且未指定 --force 时干净跳过（退出码 0）
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-kingdom-missions/internal/config"
	"go-kingdom-missions/internal/discord"
	"go-kingdom-missions/internal/logx"
	"go-kingdom-missions/internal/period"
	"go-kingdom-missions/internal/post"
	"go-kingdom-missions/internal/report"
)

func main() {
	var (
		configPath = flag.String("config", "settings.yaml", "path to settings.yaml (optional)")
		force      = flag.Bool("force", false, "post even when a mission for today already exists")
		outPath    = flag.String("out", "", "also write the result json to this file")
	)
	flag.Parse()

	// .env 仅本地开发使用，缺失不报错
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.ValidateMissions(); err != nil {
		log.Fatalf("load config: %v", err)
	}
	logx.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogLocale, cfg.LogColor)

	res, err := period.New(cfg.Timezone, nil)
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}
	session, err := discord.New(cfg.Token)
	if err != nil {
		log.Fatalf("discord session: %v", err)
	}

	result, err := post.New(cfg, session, res, nil).Run(context.Background(), *force)
	if err != nil {
		logx.Errorf("运行失败：%v", err)
		os.Exit(1)
	}
	if err := report.Write(os.Stdout, result); err != nil {
		logx.Warnf("输出结果失败：%v", err)
	}
	if *outPath != "" {
		if err := report.Export(*outPath, result); err != nil {
			logx.Warnf("导出结果失败：%v", err)
		}
	}
}
