package sysinfo

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Report geometry: labels are padded to LabelWidth inside a centered block of BlockWidth
const (
	LabelWidth = 18
	BlockWidth = 70
)

// labelColor is the ANSI cyan used for labels outside noir mode
const labelColor = lipgloss.Color("6")

// Report formats a host snapshot below the tree
type Report struct {
	Info        Info
	Site        Site
	Width       int // terminal columns used for centering
	Noir        bool
	HideIP      bool
	HideSupport bool
}

// row is one label/value line; link is set when value should be clickable
type row struct {
	label string
	value string
	link  string
}

// rows lists the info section in display order
func (r Report) rows() []row {
	rows := []row{
		{label: "OS", value: r.Info.OS},
		{label: "UPTIME", value: r.Info.Uptime},
		{label: "HARDWARE", value: r.Info.Hardware},
		{label: "MEMORY", value: r.Info.Memory},
		{label: "STORAGE", value: r.Info.Storage},
		{label: "NETWORK BANDWIDTH", value: r.Info.Bandwidth},
	}
	if !r.HideIP {
		rows = append(rows, row{label: "NODE IP", value: r.Info.IP})
	}
	if r.Site.Location != "" {
		rows = append(rows, row{label: "LOCATION", value: r.Site.Location})
	}
	return append(rows, row{label: "LOCAL TIME", value: r.Info.LocalTime})
}

func (r Report) supportRows() []row {
	if r.HideSupport {
		return nil
	}
	var rows []row
	if r.Site.Support != "" {
		rows = append(rows, row{label: "SUPPORT", value: r.Site.Support, link: LinkTarget(r.Site.Support)})
	}
	if r.Site.Docs != "" {
		rows = append(rows, row{label: "DOCS", value: r.Site.Docs, link: LinkTarget(r.Site.Docs)})
	}
	return rows
}

// Welcome is the greeting line above the info block
func (r Report) Welcome() string {
	if r.Site.Owner != "" {
		return "welcome to " + r.Info.Hostname + " - " + r.Site.Owner
	}
	return "welcome to " + r.Info.Hostname
}

// Render writes the report to w
func (r Report) Render(w io.Writer) error {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI)

	label := renderer.NewStyle().Width(LabelWidth)
	if r.Noir {
		label = label.Bold(true)
	} else {
		label = label.Foreground(labelColor)
	}

	welcome := r.Welcome()
	blockPad := strings.Repeat(" ", leftPad(r.Width, BlockWidth))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftPad(r.Width, lipgloss.Width(welcome))))
	b.WriteString(welcome)
	b.WriteString("\n\n")

	line := func(rw row) {
		value := rw.value
		if rw.link != "" {
			value = termenv.Hyperlink(rw.link, rw.value)
		}
		b.WriteString(blockPad)
		b.WriteString(label.Render(rw.label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	for _, rw := range r.rows() {
		line(rw)
	}
	b.WriteString("\n")

	if support := r.supportRows(); len(support) > 0 {
		for _, rw := range support {
			line(rw)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func leftPad(width, content int) int {
	if pad := (width - content) / 2; pad > 0 {
		return pad
	}
	return 0
}

// LinkTarget returns the hyperlink for s: mailto for addresses,
// https for bare domains, or "" when s is plain text
func LinkTarget(s string) string {
	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return s
	case looksLikeEmail(s):
		return "mailto:" + s
	case looksLikeURL(s):
		return "https://" + s
	default:
		return ""
	}
}

// looksLikeEmail matches user@domain.tld with no space in the user part
func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || strings.ContainsRune(s[:at], ' ') {
		return false
	}
	rest := s[at:]
	dot := strings.IndexByte(rest, '.')
	return dot > 1 && dot < len(rest)-1
}

// looksLikeURL matches a dot before the first space
func looksLikeURL(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return false
	}
	space := strings.IndexByte(s, ' ')
	return space < 0 || dot < space
}
