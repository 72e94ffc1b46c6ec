package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/domain/mocks"
)

type fakeSender struct {
	channel chan *discordgo.MessageEmbed
	err     error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.channel <- embed
	return &discordgo.Message{ChannelID: channelID}, f.err
}

func TestDiscordNotifier(t *testing.T) {
	req := require.New(t)
	sender := &fakeSender{channel: make(chan *discordgo.MessageEmbed, 1)}
	n := newDiscordNotifier(DiscordCfg{ChannelId: "42"}, sender)

	c := ctx.WithValue(ctx.Background(), ctx.KeySessionId, "sid-1")
	n.Notify(c, listing.NoticeError, "Error in fetching data from blockchain")

	select {
	case embed := <-sender.channel:
		req.Equal("Error in fetching data from blockchain", embed.Description)
		req.Equal(colorError, embed.Color)
		req.Len(embed.Fields, 1)
		req.Equal("sid-1", embed.Fields[0].Value)
	case <-time.After(time.Second):
		req.Fail("notice not sent")
	}
}

func TestDiscordNotifierMinLevel(t *testing.T) {
	req := require.New(t)
	sender := &fakeSender{channel: make(chan *discordgo.MessageEmbed, 1), err: errors.New("rate limited")}
	n := newDiscordNotifier(DiscordCfg{ChannelId: "42", MinLevel: listing.NoticeError}, sender)

	n.Notify(ctx.Background(), listing.NoticeInfo, "ignored")
	n.Notify(ctx.Background(), listing.NoticeError, "sent")

	select {
	case embed := <-sender.channel:
		req.Equal("sent", embed.Description)
	case <-time.After(time.Second):
		req.Fail("notice not sent")
	}
}

func TestMulti(t *testing.T) {
	c := ctx.Background()
	a, b := mocks.NewNotifier(t), mocks.NewNotifier(t)
	a.On("Notify", mock.Anything, listing.NoticeInfo, "hello").Once()
	b.On("Notify", mock.Anything, listing.NoticeInfo, "hello").Once()

	Multi(a, nil, b, NewLogNotifier()).Notify(c, listing.NoticeInfo, "hello")
}
