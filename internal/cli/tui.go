package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/selectmenu/internal/app"
)

func runProgram(model app.Model, in io.Reader, w io.Writer) (app.Model, error) {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithInput(in),
		tea.WithOutput(w),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}

	m, ok := final.(app.Model)
	if !ok {
		return model, fmt.Errorf("unexpected model type %T", final)
	}
	return m, nil
}
