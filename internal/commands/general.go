package commands

import (
	"fmt"

	"financebot/pkg/config"
	"financebot/pkg/utils"

	"github.com/bwmarrin/discordgo"
)

func GetHelpEmbed(s *discordgo.Session) *discordgo.MessageEmbed {
	embed := utils.NewEmbed()
	embed.Title = fmt.Sprintf("📘 %s Help", config.Bot.BotName)
	embed.Description = "Look up market data for stocks and cryptocurrencies."
	embed.Color = utils.ColorBlue
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
		URL: s.State.User.AvatarURL(""),
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "📈 Stocks",
		Value: fmt.Sprintf("`!%s <ticker>`\nCurrent price, daily change, 52 week range, sector, "+
			"market cap and P/E ratio for a ticker symbol.\n\n"+
			"`!%s help`\nShow usage.", config.Bot.StockTrigger, config.Bot.StockTrigger),
		Inline: false,
	})

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "🪙 Crypto",
		Value: fmt.Sprintf("`!%s <symbol> [market]`\nCurrent price plus 24h, 30d and 6m changes. "+
			"Market defaults to USD, e.g. `!%s BTC` or `!%s ETH EUR`.",
			config.Bot.CryptoTrigger, config.Bot.CryptoTrigger, config.Bot.CryptoTrigger),
		Inline: false,
	})

	return embed
}

func CmdHelp(s *discordgo.Session, m *discordgo.MessageCreate) {
	s.ChannelMessageSendEmbed(m.ChannelID, GetHelpEmbed(s))
}
