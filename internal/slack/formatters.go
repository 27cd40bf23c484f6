package slack

import (
	"fmt"
	"strings"

	"github.com/mauv0809/courtside/internal/analytics"
	"github.com/mauv0809/courtside/internal/stats"
	"github.com/slack-go/slack"
)

// summaryStats are the leaderboards shown by the leaders command when no
// metric is given.
var summaryStats = []stats.Stat{stats.StatPoints, stats.StatRebounds, stats.StatAssists, stats.StatSteals, stats.StatBlocks}

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

func formatValue(s stats.Stat, v float64) string {
	switch {
	case s == stats.StatMinutes:
		return stats.FormatMinutes(v)
	case s == stats.StatPM && v > 0:
		return fmt.Sprintf("+%g", v)
	}
	return fmt.Sprintf("%g", v)
}

func label(s stats.Stat) string {
	key := s.Key()
	if strings.ToUpper(key) == key {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// FormatLeaderboard creates a Slack message ranking players on one metric.
func (s *SlackClient) FormatLeaderboard(metric stats.Stat, entries []analytics.LeaderEntry) slack.Message {
	blocks := make([]slack.Block, 0, len(entries)+1)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏀 %s Leaders 🏀", label(metric)), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players on the roster yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		rank := i + 1
		name := e.Name
		if e.JerseyNumber != nil {
			name = fmt.Sprintf("%s #%d", e.Name, *e.JerseyNumber)
		}
		prefix := fmt.Sprintf("%d.", rank)
		if medal, ok := medals[rank]; ok {
			prefix += " " + medal
		}
		lines = append(lines, fmt.Sprintf("%s %s: *%s*", prefix, name, formatValue(metric, e.Value)))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))
	return slack.NewBlockMessage(blocks...)
}

// FormatLeaderboards creates one message with the top of the main
// leaderboards, separated by dividers.
func (s *SlackClient) FormatLeaderboards(boards analytics.Leaderboards) slack.Message {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "🏆 Team Leaders 🏆", true, false)),
	}
	for _, stat := range summaryStats {
		entries, ok := boards[stat.Key()]
		if !ok {
			continue
		}
		var lines []string
		for i, e := range entries {
			lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, e.Name, formatValue(stat, e.Value)))
		}
		if len(lines) == 0 {
			lines = []string{"No data yet."}
		}
		text := fmt.Sprintf("*%s*\n%s", label(stat), strings.Join(lines, "\n"))
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
		)
	}
	return slack.NewBlockMessage(blocks...)
}

// FormatPlayerStats creates a Slack message with a player's per-game
// averages and career totals.
func (s *SlackClient) FormatPlayerStats(name string, totals, averages analytics.Record) slack.Message {
	blocks := make([]slack.Block, 0, 3)

	headerText := fmt.Sprintf("🏀 Stats for %s 🏀", name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	if totals.GamesPlayed == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No games played yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var fields []*slack.TextBlockObject
	for _, stat := range stats.All() {
		avg, total := averages.Value(stat), totals.Value(stat)
		if avg == nil || total == nil {
			continue
		}
		text := fmt.Sprintf("*%s*\n%s per game (%s total)", label(stat), formatValue(stat, *avg), formatValue(stat, *total))
		fields = append(fields, slack.NewTextBlockObject("mrkdwn", text, false, false))
	}
	// Section blocks hold at most ten fields.
	for len(fields) > 0 {
		n := min(len(fields), 10)
		blocks = append(blocks, slack.NewSectionBlock(nil, fields[:n], nil))
		fields = fields[n:]
	}

	games := fmt.Sprintf("%d games played", totals.GamesPlayed)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", games, true, false)))
	return slack.NewBlockMessage(blocks...)
}

// FormatPlayerNotFound creates a Slack message for when no player matches the query.
func (s *SlackClient) FormatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

// FormatError creates an ephemeral-looking message for a rejected command.
func (s *SlackClient) FormatError(text string) slack.Message {
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", "⚠️ "+text, false, false), nil, nil),
	)
}
