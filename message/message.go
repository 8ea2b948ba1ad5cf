package message

import (
	"fmt"
	"strings"
	"time"
)

// Received is a message received from the chat network.
type Received struct {
	// ID is the unique ID of the message.
	ID string `json:"id"`
	// From is the chat the message arrived in. For a direct message this is
	// the sender's address; for a group message it is the group address.
	From string `json:"from"`
	// Sender is the address of the user who sent the message. In a direct
	// message it is equal to From.
	Sender string `json:"sender,omitempty"`
	// Name is the display name of the message sender.
	Name string `json:"name,omitempty"`
	// Text is the text of the message.
	Text string `json:"text"`
	// Timestamp is the timestamp of the message as milliseconds since the
	// Unix epoch.
	Timestamp int64 `json:"timestamp"`
	// FromMe indicates the message was sent by the bot's own identity.
	FromMe bool `json:"fromMe,omitempty"`
	// Group indicates the message originated in a group chat.
	Group bool `json:"group,omitempty"`
	// Mentions is the list of user addresses mentioned in the message.
	Mentions []string `json:"mentions,omitempty"`
}

func (m *Received) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}

// UserID is the identity used for per-user state: the sender address when
// present, otherwise the chat address.
func (m *Received) UserID() string {
	if m.Sender != "" {
		return m.Sender
	}
	return m.From
}

// Kind discriminates the outbound actions a bot can produce for a message.
type Kind int

const (
	// None means the message produced no action.
	None Kind = iota
	// Text means the bot replies with a text message.
	Text
	// Reaction means the bot reacts to the message with an emoji rather
	// than sending a reply.
	Reaction
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Text:
		return "text"
	case Reaction:
		return "reaction"
	default:
		return "invalid"
	}
}

// Result is the action produced by processing a received message.
// The zero Result means no action.
type Result struct {
	// Kind selects which field below is meaningful.
	Kind Kind
	// Text is the reply text when Kind is Text.
	Text string
	// Emoji is the reaction emoji when Kind is Reaction.
	Emoji string
}

// formatString is a type to prevent misuse of format strings passed to [Reply].
type formatString string

// Reply constructs a text Result from a format string literal and
// formatting arguments.
func Reply(f formatString, args ...any) Result {
	return Result{
		Kind: Text,
		Text: strings.TrimSpace(fmt.Sprintf(string(f), args...)),
	}
}

// React constructs a reaction Result.
func React(emoji string) Result {
	return Result{Kind: Reaction, Emoji: emoji}
}
