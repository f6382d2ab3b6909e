// 包 config 负责加载与校验运行配置：
// 可选的 settings.yaml 提供基线，环境变量逐项覆盖（线上通常只用环境变量），
// 启动时一次性构造为不可变值对象，此后任何组件不再读取环境。
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config 仅保留两个脚本需要的字段，yaml 键与环境变量同名（KISS/YAGNI）。
type Config struct {
	Token             string `yaml:"DISCORD_BOT_TOKEN"`
	MissionsChannelID string `yaml:"MISSIONS_CHANNEL_ID"`
	ForumDailyID      string `yaml:"FORUM_DAILY_ID"`
	ForumReflectID    string `yaml:"FORUM_REFLECT_ID"`
	Timezone          string `yaml:"TIMEZONE"`
	BankPath          string `yaml:"BANK_PATH"`
	RecentLimit       int    `yaml:"RECENT_LIMIT"`
	CreateDelayMS     int    `yaml:"CREATE_DELAY_MS"`
	LogLevel          string `yaml:"LOG_LEVEL"`
	LogFormat         string `yaml:"LOG_FORMAT"` // pretty|text|json
	LogLocale         string `yaml:"LOG_LOCALE"` // zh-CN|en
	LogColor          string `yaml:"LOG_COLOR"`  // auto|always|never
}

// Load 读取可选的配置文件，再用环境变量覆盖，最后校验并填默认值。
// path 为空或文件不存在时仅使用环境变量。
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// 没有配置文件是正常情况，走纯环境变量
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// applyEnv 用同名环境变量覆盖文件取值；空环境变量视为未设置。
func (c *Config) applyEnv() {
	overlay(&c.Token, "DISCORD_BOT_TOKEN")
	overlay(&c.MissionsChannelID, "MISSIONS_CHANNEL_ID")
	overlay(&c.ForumDailyID, "FORUM_DAILY_ID")
	overlay(&c.ForumReflectID, "FORUM_REFLECT_ID")
	overlay(&c.Timezone, "TIMEZONE")
	overlay(&c.BankPath, "BANK_PATH")
	overlayInt(&c.RecentLimit, "RECENT_LIMIT")
	overlayInt(&c.CreateDelayMS, "CREATE_DELAY_MS")
	overlay(&c.LogLevel, "LOG_LEVEL")
	overlay(&c.LogFormat, "LOG_FORMAT")
	overlay(&c.LogLocale, "LOG_LOCALE")
	overlay(&c.LogColor, "LOG_COLOR")
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overlayInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// missing 判定取值缺失：空串，或沿用模板占位值（REPLACE_WITH_ 前缀）。
func missing(v string) bool {
	return v == "" || strings.HasPrefix(v, "REPLACE_WITH_")
}

// Validate 负责合法性检查与默认值设置，避免在业务层分散判空逻辑。
func (c *Config) Validate() error {
	if missing(c.Token) {
		return errors.New("DISCORD_BOT_TOKEN is required")
	}
	if c.RecentLimit < 0 {
		return errors.New("RECENT_LIMIT must be >= 0")
	}
	if c.CreateDelayMS < 0 {
		return errors.New("CREATE_DELAY_MS must be >= 0")
	}
	if c.Timezone == "" {
		c.Timezone = "Australia/Melbourne"
	}
	if c.BankPath == "" {
		c.BankPath = "./missions/bank.json"
	}
	if c.RecentLimit == 0 {
		c.RecentLimit = 30
	}
	if c.CreateDelayMS == 0 {
		c.CreateDelayMS = 400
	}
	if c.LogFormat == "" {
		c.LogFormat = "pretty"
	}
	if c.LogLocale == "" {
		c.LogLocale = "zh-CN"
	}
	if c.LogColor == "" {
		c.LogColor = "auto"
	}
	return nil
}

// ValidateMissions 校验单频道每日任务所需的目标频道。
func (c *Config) ValidateMissions() error {
	if missing(c.MissionsChannelID) {
		return errors.New("MISSIONS_CHANNEL_ID is required")
	}
	return nil
}

// ValidateForums 校验论坛任务所需的两个论坛频道。
func (c *Config) ValidateForums() error {
	if missing(c.ForumDailyID) {
		return errors.New("FORUM_DAILY_ID is required")
	}
	if missing(c.ForumReflectID) {
		return errors.New("FORUM_REFLECT_ID is required")
	}
	return nil
}
