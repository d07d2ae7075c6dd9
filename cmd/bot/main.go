package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"financebot/internal/alphavantage"
	"financebot/internal/commands"
	"financebot/internal/crypto"
	"financebot/internal/stocks"
	"financebot/pkg/config"
	"financebot/pkg/logger"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	// Load Configuration
	config.Load()

	zl, err := logger.New(config.Bot.Log)
	if err != nil {
		log.Fatal("Error creating logger: ", err)
	}
	defer zl.Sync()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Fatal("DISCORD_TOKEN not found in environment variables")
	}

	// Shared Alpha Vantage client for both lookup commands
	av := alphavantage.NewClient(config.AlphaVantageKey)
	stocks.Init(av, zl)
	crypto.Init(av, zl)

	// Create Discord Session
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatal("Error creating Discord session: ", err)
	}

	// Register Handlers
	dg.AddHandler(commands.MessageCreate)

	// Identify Intent
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	// Open Websocket
	err = dg.Open()
	if err != nil {
		log.Fatal("Error opening connection: ", err)
	}

	zl.Info("bot is now running",
		zap.String("stock_trigger", config.Bot.StockTrigger),
		zap.String("crypto_trigger", config.Bot.CryptoTrigger))

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session.
	dg.Close()
}
