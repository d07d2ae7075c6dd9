package config

import (
	"encoding/json"
	"log"
	"os"
)

type LogConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"` // "json" or "console"
	OutputFile string `json:"output_file"`
}

type GeneralConfig struct {
	BotName         string    `json:"bot_name"`
	StockTrigger    string    `json:"stock_trigger"`
	CryptoTrigger   string    `json:"crypto_trigger"`
	AllowedChannels []string  `json:"allowed_channels"`
	Log             LogConfig `json:"log"`
}

var (
	Bot GeneralConfig

	// AlphaVantageKey comes from the environment only, never from config.json.
	AlphaVantageKey string
)

func Load() {
	loadJSON("config.json", &Bot)

	if Bot.BotName == "" {
		Bot.BotName = "FinanceBot"
	}
	if Bot.StockTrigger == "" {
		Bot.StockTrigger = "stock"
	}
	if Bot.CryptoTrigger == "" {
		Bot.CryptoTrigger = "hodl"
	}
	if Bot.Log.Level == "" {
		Bot.Log.Level = "info"
	}

	AlphaVantageKey = os.Getenv("ALPHAVANTAGE_KEY")
	if AlphaVantageKey == "" {
		log.Fatal("ALPHAVANTAGE_KEY not found in environment variables")
	}
}

func loadJSON(filename string, target interface{}) {
	file, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("Error reading %s: %v", filename, err)
	}

	err = json.Unmarshal(file, target)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", filename, err)
	}
}

// IsChannelAllowed checks if a channel ID is in the allowed channels list
// Returns true if the list is empty (all channels allowed) or if the channel is in the list
func (c *GeneralConfig) IsChannelAllowed(channelID string) bool {
	if len(c.AllowedChannels) == 0 {
		return true
	}
	for _, id := range c.AllowedChannels {
		if id == channelID {
			return true
		}
	}
	return false
}
