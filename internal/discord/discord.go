// 包 discord 是对 discordgo 会话的窄接口封装：
// 只声明两个脚本实际消费的 REST 能力，便于测试注入假实现。
// 会话仅做 REST 调用，不建立网关连接。
package discord

import "github.com/bwmarrin/discordgo"

// API 列出工作流消费的全部远端能力，*discordgo.Session 天然满足该接口。
type API interface {
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
	GuildThreadsActive(guildID string, options ...discordgo.RequestOption) (*discordgo.ThreadsList, error)
	ForumThreadStartComplex(channelID string, threadData *discordgo.ThreadStart, messageData *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// 编译期确认 Session 满足 API。
var _ API = (*discordgo.Session)(nil)

// New 用机器人凭证创建会话。
func New(token string) (*discordgo.Session, error) {
	return discordgo.New("Bot " + token)
}
