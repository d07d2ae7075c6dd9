package commands

import (
	"strings"

	"financebot/internal/crypto"
	"financebot/internal/stocks"
	"financebot/pkg/config"

	"github.com/bwmarrin/discordgo"
)

func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.HasPrefix(m.Content, "!") {
		return
	}

	if !config.Bot.IsChannelAllowed(m.ChannelID) {
		return
	}

	args := strings.Fields(m.Content)
	command := strings.TrimPrefix(strings.ToLower(args[0]), "!")
	args = args[1:]

	switch command {
	case "help":
		CmdHelp(s, m)
	case config.Bot.StockTrigger:
		stocks.CmdStock(s, m, args)
	case config.Bot.CryptoTrigger:
		crypto.CmdCrypto(s, m, args)
	}
}
