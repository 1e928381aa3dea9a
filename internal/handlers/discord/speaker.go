package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/eidetic/internal/feedback"
)

// messageSender is the part of the Discord session a speaker needs
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// speaker collects the cues of one interaction and reads text aloud in the
// interaction's channel as a text-to-speech message
type speaker struct {
	feedback.Recorder

	sender    messageSender
	channelID string
	ready     func() bool
	logger    *slog.Logger
}

func newSpeaker(sender messageSender, channelID string, ready func() bool, logger *slog.Logger) *speaker {
	if logger == nil {
		logger = slog.Default()
	}
	return &speaker{
		sender:    sender,
		channelID: channelID,
		ready:     ready,
		logger:    logger,
	}
}

// Say sends text as a TTS message
func (s *speaker) Say(text string) {
	s.Recorder.Say(text)
	if s.channelID == "" || (s.ready != nil && !s.ready()) {
		return
	}

	_, err := s.sender.ChannelMessageSendComplex(s.channelID, &discordgo.MessageSend{
		Content: text,
		TTS:     true,
	})
	if err != nil {
		s.logger.Warn("failed to send tts message",
			"channel_id", s.channelID,
			"error", err)
	}
}
