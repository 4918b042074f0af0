package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerClosedMsg reports the result of a pager session
type pagerClosedMsg struct {
	err error
}

// Pager shows long content outside the picker
type Pager interface {
	Show(content string) error
}

// OvPager runs the ov pager in the terminal owned by a bubbletea program
type OvPager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewOvPager creates a pager bound to program, which may be set later
func NewOvPager(program *tea.Program) *OvPager {
	return &OvPager{program: program}
}

// SetProgram sets the program reference for terminal management
func (p *OvPager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show releases the terminal, runs ov over content and restores the picker
func (p *OvPager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return RunOv(content)
}

// RunOv pages content with ov on the current terminal
func RunOv(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the document back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showInPager wraps a pager call as a command so Update never blocks
func showInPager(p Pager, content string) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{err: p.Show(content)}
	}
}
