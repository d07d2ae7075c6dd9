package crypto

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"financebot/internal/alphavantage"
	"financebot/pkg/config"
	"financebot/pkg/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	client *alphavantage.Client
	log    *zap.Logger
)

// Init wires the shared provider client and logger. Called once from main
// before the session opens.
func Init(c *alphavantage.Client, l *zap.Logger) {
	client = c
	log = l
}

// CmdCrypto handles the configurable crypto lookup command.
func CmdCrypto(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	s.ChannelMessageSendEmbed(m.ChannelID, LookupEmbed(context.Background(), args))
}

// LookupEmbed runs the full lookup pipeline for one invocation and always
// returns a reply embed, error embeds included. Unlike the equity lookup,
// each failure mode keeps its own user-facing message.
func LookupEmbed(ctx context.Context, args []string) *discordgo.MessageEmbed {
	if len(args) == 0 {
		return utils.InfoEmbed("Crypto Lookup",
			fmt.Sprintf("Please provide a cryptocurrency symbol (e.g., `!%s BTC`)", config.Bot.CryptoTrigger))
	}

	symbol := strings.ToUpper(args[0])
	market := "USD"
	if len(args) > 1 {
		market = strings.ToUpper(args[1])
	}
	reqID := uuid.NewString()[:8]

	series, err := client.DigitalCurrencyDaily(ctx, symbol, market)
	if err == nil {
		err = alphavantage.Validate(series, alphavantage.KeyDailySeries)
	}

	var cmp *Comparison
	if err == nil {
		cmp, err = Derive(symbol, market, series)
	}
	if err != nil {
		log.Warn("crypto lookup failed",
			zap.String("req_id", reqID),
			zap.String("symbol", symbol),
			zap.String("market", market),
			zap.Error(err))
		return failureEmbed(symbol, market, err)
	}

	return Render(cmp)
}

func failureEmbed(symbol, market string, err error) *discordgo.MessageEmbed {
	var (
		transport    *alphavantage.TransportError
		provider     *alphavantage.ProviderError
		empty        *alphavantage.EmptyError
		insufficient *InsufficientHistoryError
	)
	switch {
	case errors.As(err, &transport) && transport.Status != 0:
		return utils.ErrorEmbed(fmt.Sprintf("Error fetching data: HTTP %d", transport.Status))
	case errors.As(err, &provider) && provider.Advisory:
		return utils.InfoEmbed("API Note", provider.Message)
	case errors.As(err, &provider):
		return utils.ErrorEmbed("Error: " + provider.Message)
	case errors.As(err, &empty):
		return utils.ErrorEmbed(fmt.Sprintf("No data found for %s/%s", symbol, market))
	case errors.As(err, &insufficient):
		return utils.ErrorEmbed(fmt.Sprintf("Insufficient historical data for %s/%s", symbol, market))
	default:
		return utils.ErrorEmbed(fmt.Sprintf("Error fetching %s data: %v", symbol, err))
	}
}
