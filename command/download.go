package command

import (
	"context"
	"net/url"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
)

// DownloadURL queues a media download from a link.
func DownloadURL(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %s%s <link>", env.Prefix, call.Name), nil
	}
	u, err := url.Parse(strings.Fields(call.Args)[0])
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return message.Reply("That doesn't look like a link I can fetch."), nil
	}
	if err := collab(env); err != nil {
		return message.Result{}, err
	}
	return message.Reply("📥 Queued %s for download. The media pipeline is offline right now, so delivery will wait.", u.Host), nil
}

// Convert converts downloaded media between formats.
func Convert(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %sconvert <format>", env.Prefix), nil
	}
	switch lower.String(call.Args) {
	case "mp3", "mp4", "gif", "webp":
		return message.Reply("🔄 Conversion to %s queued behind the media pipeline.", lower.String(call.Args)), nil
	default:
		return message.Reply("I can convert to mp3, mp4, gif, or webp."), nil
	}
}
