package notify

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/goroutine"
	"github.com/anft-xyz/goapi/domain/listing"
)

const (
	colorInfo  = 0x2f80ed
	colorError = 0xeb5757
)

type DiscordCfg struct {
	BotKey    string
	ChannelId string
	// MinLevel drops info notices when set to NoticeError
	MinLevel listing.NoticeLevel
}

// embedSender is the part of *discordgo.Session used here
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordNotifier struct {
	cfg     DiscordCfg
	discord embedSender
}

func NewDiscordNotifier(cfg DiscordCfg) (listing.Notifier, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return newDiscordNotifier(cfg, discord), nil
}

func newDiscordNotifier(cfg DiscordCfg, discord embedSender) *discordNotifier {
	return &discordNotifier{cfg: cfg, discord: discord}
}

// Notify posts the notice in the background, a slow discord never delays the caller
func (n *discordNotifier) Notify(c ctx.Ctx, level listing.NoticeLevel, message string) {
	if n.cfg.MinLevel == listing.NoticeError && level != listing.NoticeError {
		return
	}
	c = ctx.Detach(c)
	goroutine.RecoverableGo(func() {
		if _, err := n.discord.ChannelMessageSendEmbed(n.cfg.ChannelId, n.embed(c, level, message)); err != nil {
			c.WithField("err", err).Warn("ChannelMessageSendEmbed failed")
		}
	}, goroutine.WithName("discord-notify"))
}

func (n *discordNotifier) embed(c ctx.Ctx, level listing.NoticeLevel, message string) *discordgo.MessageEmbed {
	color := colorInfo
	if level == listing.NoticeError {
		color = colorError
	}
	msg := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("listing %s", level),
		Description: message,
		Color:       color,
	}
	if sid := ctx.SessionId(c); sid != "" {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Session", Value: sid})
	}
	if rid, ok := c.Value(ctx.KeyRequestId).(string); ok && rid != "" {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Request", Value: rid})
	}
	return msg
}
