package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dicegame/internal/engine"
	"github.com/KirkDiggler/dicegame/internal/models"
	"github.com/KirkDiggler/dicegame/internal/scoring"
	matchService "github.com/KirkDiggler/dicegame/internal/services/match"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorInProgress = 0x00ff00
	colorGameOver   = 0xffd700
	colorError      = 0xff0000
)

// dieFaces are the unicode die glyphs for 1..6
var dieFaces = [...]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

func dieFace(v int) string {
	if v < 1 || v > len(dieFaces) {
		return "?"
	}
	return dieFaces[v-1]
}

// renderDice draws the dice row, marking held dice
func renderDice(snap *engine.Snapshot) string {
	if snap.RollCount == 0 {
		return "Not rolled yet"
	}

	parts := make([]string, 0, models.DiceCount)
	for i, v := range snap.Dice {
		part := fmt.Sprintf("%s %d", dieFace(v), v)
		if snap.Held[i] {
			part = fmt.Sprintf("**[%s]**", part)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "  ")
}

// renderScoreCard lists every category of one player, filled or not
func renderScoreCard(p *engine.PlayerView) string {
	var sb strings.Builder
	for _, c := range models.AllCategories() {
		value := "-"
		if v, ok := p.ScoreCard.Get(c); ok {
			value = fmt.Sprintf("%d", v)
		}
		fmt.Fprintf(&sb, "%s: %s\n", c.DisplayName(), value)

		if c == models.CategorySixes {
			fmt.Fprintf(&sb, "*Upper: %d/%d, bonus %d*\n", p.UpperSum, scoring.UpperBonusThreshold, p.Bonus)
		}
	}
	fmt.Fprintf(&sb, "**Total: %d**", p.TotalWithBonus)
	return sb.String()
}

// renderTurnStatus describes whose turn it is and what they can do
func renderTurnStatus(snap *engine.Snapshot) string {
	if snap.GameOver {
		if snap.Tie {
			return fmt.Sprintf("No one, it's a tie! Final score %d to %d.", snap.FinalScores[0], snap.FinalScores[1])
		}
		return fmt.Sprintf("%s wins %d to %d!", snap.WinnerName, maxInt(snap.FinalScores[0], snap.FinalScores[1]), minInt(snap.FinalScores[0], snap.FinalScores[1]))
	}

	current := snap.Current()
	switch snap.Phase {
	case models.PhaseAwaitingFirstRoll:
		return fmt.Sprintf("<@%s> (%s), roll the dice! %d rolls left.", current.ID, current.Name, current.RollsLeft)
	case models.PhaseAwaitingScore:
		return fmt.Sprintf("%s has no rerolls left. Pick a category.", current.Name)
	default:
		return fmt.Sprintf("%s: roll %d of %d, %d rolls left. Hold dice and reroll, or pick a category.",
			current.Name, snap.RollCount, models.MaxRollsPerTurn, current.RollsLeft)
	}
}

// renderBoardEmbed draws the full board of a match
func renderBoardEmbed(snap *engine.Snapshot) *discordgo.MessageEmbed {
	color := colorInProgress
	if snap.GameOver {
		color = colorGameOver
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Dice",
			Value:  renderDice(snap),
			Inline: false,
		},
	}

	for i := range snap.Players {
		p := &snap.Players[i]
		name := p.Name
		if !snap.GameOver && i == snap.CurrentPlayer {
			name = fmt.Sprintf("%s \U0001F3B2", name)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  renderScoreCard(p),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Yahtzee: %s vs %s", snap.Players[0].Name, snap.Players[1].Name),
		Description: renderTurnStatus(snap),
		Color:       color,
		Fields:      fields,
	}
}

// renderBoardComponents builds the roll button, hold buttons and category menu.
// A finished match has no components.
func renderBoardComponents(snap *engine.Snapshot) []discordgo.MessageComponent {
	if snap.GameOver {
		return []discordgo.MessageComponent{}
	}

	rollLabel := "Roll Dice"
	if snap.RollCount > 0 {
		rollLabel = "Reroll"
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    rollLabel,
					Style:    discordgo.PrimaryButton,
					CustomID: rollDiceID(snap.MatchID),
					Disabled: !snap.CanRoll,
					Emoji: &discordgo.ComponentEmoji{
						Name: "\U0001F3B2",
					},
				},
			},
		},
	}

	if !snap.ScorePending {
		return components
	}

	holdButtons := make([]discordgo.MessageComponent, 0, models.DiceCount)
	for i, v := range snap.Dice {
		style := discordgo.SecondaryButton
		label := fmt.Sprintf("%s %d", dieFace(v), v)
		if snap.Held[i] {
			style = discordgo.SuccessButton
			label = fmt.Sprintf("Held %d", v)
		}
		holdButtons = append(holdButtons, discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: holdDieID(snap.MatchID, i),
			Disabled: !snap.CanRoll,
		})
	}
	components = append(components, discordgo.ActionsRow{Components: holdButtons})

	current := snap.Current()
	options := make([]discordgo.SelectMenuOption, 0, models.NumCategories)
	for _, c := range current.ScoreCard.Unfilled() {
		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf("%s (%d)", c.DisplayName(), snap.PotentialScores[c]),
			Value: c.Key(),
		})
	}
	if len(options) > 0 {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    scoreCategoryID(snap.MatchID),
					Placeholder: "Pick a category to score",
					Options:     options,
				},
			},
		})
	}

	return components
}

// renderBoard builds the message data showing a match
func renderBoard(snap *engine.Snapshot, content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content:    content,
		Embeds:     []*discordgo.MessageEmbed{renderBoardEmbed(snap)},
		Components: renderBoardComponents(snap),
	}
}

// renderLeaderboard lists the best scores across matches
func renderLeaderboard(entries []matchService.LeaderboardEntry) *discordgo.MessageEmbed {
	description := "No finished matches yet. Start one with `/yahtzee start`!"
	if len(entries) > 0 {
		var sb strings.Builder
		for i, entry := range entries {
			fmt.Fprintf(&sb, "%d. **%s**: %d (W%d L%d T%d)\n",
				i+1, entry.PlayerName, entry.BestScore, entry.Wins, entry.Losses, entry.Ties)
		}
		description = sb.String()
	}

	return &discordgo.MessageEmbed{
		Title:       "Yahtzee High Scores",
		Description: description,
		Color:       colorGameOver,
	}
}

// renderHistory lists the scored categories of a match in order
func renderHistory(records []*models.ScoreRecord) *discordgo.MessageEmbed {
	description := "Nothing scored yet."
	if len(records) > 0 {
		var sb strings.Builder
		for i, r := range records {
			faces := make([]string, 0, models.DiceCount)
			for _, v := range r.Dice {
				faces = append(faces, fmt.Sprintf("%d", v))
			}
			fmt.Fprintf(&sb, "%d. %s: %s %d [%s]\n",
				i+1, r.PlayerName, r.Category.DisplayName(), r.Score, strings.Join(faces, " "))
		}
		description = sb.String()
	}

	return &discordgo.MessageEmbed{
		Title:       "Score History",
		Description: description,
		Color:       colorInProgress,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
