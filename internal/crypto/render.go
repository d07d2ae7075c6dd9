package crypto

import (
	"fmt"
	"strings"

	"financebot/pkg/utils"

	"github.com/bwmarrin/discordgo"
)

// Render builds the reply embed for one comparison. Line order and label
// text are fixed; each change line carries its own direction styling.
func Render(cmp *Comparison) *discordgo.MessageEmbed {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Current: %.2f %s\n", cmp.Today.Close, cmp.Market))
	sb.WriteString(fmt.Sprintf("24h Change: %s\n", utils.FormatChange(cmp.Day.Value, cmp.Day.Percent)))
	sb.WriteString(fmt.Sprintf("24h Volume: %s %s\n", utils.FormatVolume(cmp.Today.Volume), cmp.Symbol))
	sb.WriteString(fmt.Sprintf("24h High: %.2f %s\n", cmp.Today.High, cmp.Market))
	sb.WriteString(fmt.Sprintf("24h Low: %.2f %s\n", cmp.Today.Low, cmp.Market))
	sb.WriteString(fmt.Sprintf("30d Change: %s\n", utils.FormatChange(cmp.Month.Value, cmp.Month.Percent)))
	sb.WriteString(fmt.Sprintf("6m Change: %s", utils.FormatChange(cmp.HalfYear.Value, cmp.HalfYear.Percent)))

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s/%s - %s", cmp.Symbol, cmp.Market, cmp.Today.Date),
		Description: sb.String(),
		Color:       utils.ChangeColor(cmp.Day.Value),
	}
}
