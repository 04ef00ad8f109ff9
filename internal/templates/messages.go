// Package templates renders the HTML chat messages the bot sends. Telegram
// accepts a small HTML subset: b, i, u, s, a, code, pre.
package templates

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Command describes one entry of the help listing.
type Command struct {
	Name    string
	Args    string
	Summary string
}

// Commands is the command listing shown by /start and /help.
var Commands = []Command{
	{Name: "/audio", Args: "<url>", Summary: "download the audio track as MP3"},
	{Name: "/video", Args: "<url>", Summary: "download the video with sound as MP4"},
	{Name: "/mute-video", Args: "<url>", Summary: "download the video without sound"},
	{Name: "/stop", Summary: "stop the download in progress"},
	{Name: "/delete", Summary: "remove every downloaded file from the server"},
	{Name: "/help", Summary: "show this message"},
}

func Welcome(name string, domains []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		greeting := "Hello!"
		if name != "" {
			greeting = "Hello, " + templ.EscapeString(name) + "!"
		}
		if _, err := io.WriteString(w, "<b>"+greeting+"</b>\n"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "Send me a link and I will fetch the media for you.\n\n"); err != nil {
			return err
		}
		if err := Help(domains).Render(ctx, w); err != nil {
			return err
		}
		return nil
	})
}

func Help(domains []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<b>Commands</b>\n")
		for _, c := range Commands {
			b.WriteString("<code>")
			b.WriteString(templ.EscapeString(c.Name))
			if c.Args != "" {
				b.WriteString(" ")
				b.WriteString(templ.EscapeString(c.Args))
			}
			b.WriteString("</code> ")
			b.WriteString(templ.EscapeString(c.Summary))
			b.WriteString("\n")
		}
		if len(domains) > 0 {
			b.WriteString("\n<b>Supported sites</b>\n")
			b.WriteString(templ.EscapeString(strings.Join(domains, ", ")))
			b.WriteString("\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RenderString renders c into a string.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
