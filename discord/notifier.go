package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/circulo-sport/courtdesk/events"
	"github.com/circulo-sport/courtdesk/export"
	"github.com/circulo-sport/courtdesk/shiftclose"
	"github.com/patrickmn/go-cache"
)

const closeColor = 0x2e7d32

// Notifier relays shift closes and backup reminders to a Discord channel.
// Reminders are sent at most once per reminderCooldown.
type Notifier struct {
	client    DiscordClient
	channelID string
	loc       *time.Location
	sent      *cache.Cache
	logger    *slog.Logger
}

const reminderCooldown = 12 * time.Hour

func NewNotifier(client DiscordClient, channelID string, loc *time.Location) *Notifier {
	if loc == nil {
		loc = time.Local
	}

	return &Notifier{
		client:    client,
		channelID: channelID,
		loc:       loc,
		sent:      cache.New(reminderCooldown, time.Hour),
		logger:    slog.Default().With("component", "discord"),
	}
}

// Run consumes events until ctx is done or the channel is closed.
func (n *Notifier) Run(ctx context.Context, in <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-in:
			if !ok {
				return
			}

			if err := n.Handle(ctx, ev); err != nil {
				n.logger.Error("failed to notify", "type", ev.Type, "err", err)
			}
		}
	}
}

func (n *Notifier) Handle(ctx context.Context, ev events.Event) error {
	switch ev.Type {
	case events.CloseCreated:
		record, ok := ev.Payload.(shiftclose.Record)

		if !ok {
			return fmt.Errorf("unexpected payload %T for %v", ev.Payload, ev.Type)
		}

		return n.client.SendMessage(ctx, n.channelID, Message{Embeds: []Embed{n.closeEmbed(record)}})
	case events.BackupReminder:
		if _, found := n.sent.Get(string(events.BackupReminder)); found {
			return nil
		}

		content := "No backup has been taken yet. Download one from the backup page."

		if settings, ok := ev.Payload.(export.Settings); ok && settings.LastBackupAt != nil {
			content = fmt.Sprintf("Last backup was on %v. Time to download a new one.", settings.LastBackupAt.In(n.loc).Format("02/01/2006 15:04"))
		}

		if err := n.client.SendMessage(ctx, n.channelID, Message{Content: content}); err != nil {
			return err
		}

		n.sent.SetDefault(string(events.BackupReminder), true)
	}

	return nil
}

func (n *Notifier) closeEmbed(r shiftclose.Record) Embed {
	return Embed{
		Title:       fmt.Sprintf("Shift close - %v", r.Operator),
		Description: fmt.Sprintf("%v to %v", r.Start.In(n.loc).Format("02/01/2006 15:04"), r.End.In(n.loc).Format("02/01/2006 15:04")),
		Color:       closeColor,
		Fields: []EmbedField{
			{Name: "Cash", Value: r.Totals.Cash.StringFixed(0), Inline: true},
			{Name: "Transfer", Value: r.Totals.Transfer.StringFixed(0), Inline: true},
			{Name: "Total", Value: r.Totals.Overall.StringFixed(0), Inline: true},
			{Name: "Sales", Value: fmt.Sprint(r.SalesCount), Inline: true},
			{Name: "Duration", Value: fmt.Sprintf("%v min", r.DurationMinutes), Inline: true},
		},
		Footer:    &EmbedFooter{Text: r.ID},
		Timestamp: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
