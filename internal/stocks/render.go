package stocks

import (
	"fmt"
	"strings"

	"financebot/pkg/utils"

	"github.com/bwmarrin/discordgo"
)

// Render builds the reply embed for one equity snapshot. Line order and
// label text are fixed.
func Render(snap *Snapshot) *discordgo.MessageEmbed {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("**Price:** $%.2f %s%s from previous close @ $%.2f\n",
		snap.Price, utils.ChangeArrow(snap.Change), snap.ChangePercent, snap.PreviousClose))
	sb.WriteString(fmt.Sprintf("**Open:** $%.2f\n", snap.Open))
	sb.WriteString(fmt.Sprintf("**52 Week High:** $%.2f\n", snap.High52Week))
	sb.WriteString(fmt.Sprintf("**52 Week Low:** $%.2f\n", snap.Low52Week))
	sb.WriteString(fmt.Sprintf("**Sector:** %s\n", snap.Sector))
	sb.WriteString(fmt.Sprintf("**Market Cap:** %s\n", utils.FormatMarketCap(snap.MarketCap)))
	sb.WriteString(fmt.Sprintf("**P/E Ratio:** %s", snap.PERatio))

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s (%s)", snap.Name, snap.Symbol),
		URL:         "https://finance.yahoo.com/quote/" + snap.Symbol,
		Description: sb.String(),
		Color:       utils.ChangeColor(snap.Change),
	}
}
