package stocks

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

const noResultsMsg = "No results, double check that you've chosen a real ticker symbol"

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

// CmdStock handles the configurable stock lookup command.
func CmdStock(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	s.ChannelMessageSendEmbed(m.ChannelID, LookupEmbed(context.Background(), args))
}

// LookupEmbed runs the full lookup pipeline for one invocation and always
// returns a reply embed, error embeds included.
func LookupEmbed(ctx context.Context, args []string) *discordgo.MessageEmbed {
	if len(args) == 0 || strings.EqualFold(args[0], "help") {
		return usageEmbed()
	}

	ticker := strings.ToUpper(args[0])
	reqID := uuid.NewString()[:8]

	overview, err := fetchValidated(ctx, ticker, reqID, "overview")
	if err != nil {
		return failureEmbed(err)
	}
	quote, err := fetchValidated(ctx, ticker, reqID, "quote")
	if err != nil {
		return failureEmbed(err)
	}

	snap, err := Derive(ticker, quote, overview)
	if err != nil {
		// The user only sees the generic message; keep the cause in the log.
		log.Warn("equity derivation failed",
			zap.String("req_id", reqID),
			zap.String("ticker", ticker),
			zap.Error(err))
		return utils.ErrorEmbed(noResultsMsg)
	}

	return Render(snap)
}

func fetchValidated(ctx context.Context, ticker, reqID, kind string) (alphavantage.Payload, error) {
	var (
		payload alphavantage.Payload
		err     error
	)
	switch kind {
	case "overview":
		payload, err = client.Overview(ctx, ticker)
		if err == nil {
			err = alphavantage.Validate(payload, "")
		}
	case "quote":
		payload, err = client.GlobalQuote(ctx, ticker)
		if err == nil {
			err = alphavantage.Validate(payload, alphavantage.KeyGlobalQuote)
		}
	}
	if err != nil {
		log.Warn("equity fetch failed",
			zap.String("req_id", reqID),
			zap.String("ticker", ticker),
			zap.String("payload", kind),
			zap.Error(err))
		return nil, err
	}
	return payload, nil
}

func failureEmbed(err error) *discordgo.MessageEmbed {
	var transport *alphavantage.TransportError
	if errors.As(err, &transport) {
		return utils.ErrorEmbed(fmt.Sprintf("Request failed: %v", transport))
	}
	// Bad symbol and bad response shape deliberately look the same to the
	// user; the log entry keeps them apart.
	return utils.ErrorEmbed(noResultsMsg)
}

func usageEmbed() *discordgo.MessageEmbed {
	return utils.InfoEmbed("Stock Lookup",
		fmt.Sprintf("Look up information about a stock using its ticker symbol, for example:\n`!%s tsla`",
			config.Bot.StockTrigger))
}
