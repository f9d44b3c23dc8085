package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"icatest/internal/winerror"
)

// Selector runs a prompt and returns the chosen index.
type Selector interface {
	Run() (int, string, error)
}

// Browser lets the user search the error code table interactively.
type Browser struct {
	infos     []winerror.Info
	stdin     io.ReadCloser
	stdout    io.WriteCloser
	newSelect func(items []string, searcher func(string, int) bool) Selector
}

// NewBrowser builds a Browser over infos. Nil streams mean the process terminal.
func NewBrowser(infos []winerror.Info, stdin io.ReadCloser, stdout io.WriteCloser) *Browser {
	b := &Browser{
		infos:  infos,
		stdin:  stdin,
		stdout: stdout,
	}
	b.newSelect = b.promptSelect
	return b
}

// Run shows the picker and returns the selected entry. Interrupting the
// prompt returns promptui.ErrInterrupt unchanged.
func (b *Browser) Run() (winerror.Info, error) {
	if len(b.infos) == 0 {
		return winerror.Info{}, errors.New("no error codes to browse")
	}

	items := formatItems(b.infos)
	searcher := func(input string, index int) bool {
		return matches(b.infos[index], input)
	}

	index, _, err := b.newSelect(items, searcher).Run()
	if err != nil {
		return winerror.Info{}, err
	}
	if index < 0 || index >= len(b.infos) {
		return winerror.Info{}, errors.Errorf("invalid selection %d", index)
	}
	return b.infos[index], nil
}

func (b *Browser) promptSelect(items []string, searcher func(string, int) bool) Selector {
	return &promptui.Select{
		Label:             "Search error codes",
		Items:             items,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          searcher,
		Stdin:             b.stdin,
		Stdout:            b.stdout,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}:",
			Active:   "▶ {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "✅ {{ . | green }}",
			Help:     "{{ \"Type to filter by name or value\" | faint }} {{ \"|\" | faint }} {{ \"Exit:\" | faint }} Ctrl + C",
		},
	}
}

// matches accepts a case-insensitive name fragment or an exact decimal value.
func matches(info winerror.Info, input string) bool {
	input = strings.ToUpper(strings.TrimSpace(input))
	if input == "" {
		return true
	}
	if fmt.Sprint(uint32(info.Value)) == input {
		return true
	}
	return strings.Contains(strings.ToUpper(info.Name), input)
}

func formatItems(infos []winerror.Info) []string {
	maxNameWidth := 0
	maxValueWidth := 0
	for _, info := range infos {
		maxNameWidth = max(maxNameWidth, runewidth.StringWidth(info.Name))
		maxValueWidth = max(maxValueWidth, len(fmt.Sprint(uint32(info.Value))))
	}

	items := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name + strings.Repeat(" ", maxNameWidth-runewidth.StringWidth(info.Name))
		items = append(items, fmt.Sprintf("%s %*d  %s", name, maxValueWidth, uint32(info.Value), info.Description))
	}
	return items
}
