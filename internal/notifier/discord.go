package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Notifier surfaces operational incidents that need a human. The registration
// flow calls it when a compensating delete fails and an orphan row is left
// behind for manual cleanup.
type Notifier interface {
	AlertOrphanedRegistration(variant, email, referenceNumber string, cause error) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
	log       zerolog.Logger
}

func NewDiscordNotifier(session *discordgo.Session, channelID string, log zerolog.Logger) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
		log:       log,
	}
}

func (n *DiscordNotifier) AlertOrphanedRegistration(variant, email, referenceNumber string, cause error) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("⚠️ **Orphaned Registration**\n**Variant:** %s\n**Reference Number:** %s\n**Email:** %s\n**Cause:** %v\nConfirmation email failed and the compensating delete also failed. The row must be removed by hand.",
		variant,
		referenceNumber,
		email,
		cause,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		n.log.Error().Err(err).Msg("failed to send discord alert")
		return err
	}

	return nil
}
