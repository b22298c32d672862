package ui

import (
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in the ov pager. It implements tea.ExecCommand so
// Bubble Tea releases and restores the terminal around it.
type pagerCommand struct {
	title   string
	content string
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showInPager runs the pager and reports back with a pagerMsg
func showInPager(title, content string) tea.Cmd {
	return tea.Exec(&pagerCommand{title: title, content: content}, func(err error) tea.Msg {
		return pagerMsg{title: title, err: err}
	})
}

// renderMarkdown styles a markdown document for the pager. The plain
// markdown is returned if rendering fails.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		log.Printf("Markdown rendering failed: %v", err)
		return md
	}
	return out
}
