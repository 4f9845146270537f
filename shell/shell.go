// Package shell contains the interactive shell: load a CSV table, type
// formulas, see results.
package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/squareup/rowply/apply"
	"github.com/squareup/rowply/errors"
	"github.com/squareup/rowply/metrics"
	"github.com/squareup/rowply/parser"
)

type Shell struct {
	VI              bool
	table           *Table
	strategy        apply.Strategy
	formulasCounter metrics.Counter
}

func NewShell(vi bool) *Shell {
	return &Shell{VI: vi, strategy: apply.DefaultStrategy}
}

// SetMetricsFactory registers the shell's counters with an already started
// metrics factory.
func (s *Shell) SetMetricsFactory(factory metrics.Factory) error {
	counter, err := factory.CreateCounter("rowply_shell_formulas_total", "Total number of formulas executed in the shell")
	if err != nil {
		return err
	}
	s.formulasCounter = counter
	return nil
}

// Load reads a CSV file and makes it the current table.
func (s *Shell) Load(path string) error {
	table, err := LoadCSV(path)
	if err != nil {
		return err
	}
	s.table = table
	return nil
}

func (s *Shell) Run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return errors.MaybeAddStack(err)
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:            filepath.Join(home, ".rowply.history"),
		DisableAutoSaveHistory: true,
		VimMode:                s.VI,
	})
	if err != nil {
		return errors.MaybeAddStack(err)
	}
	for {
		rl.SetPrompt("rowply> ")
		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if err.Error() == "Interrupt" {
				// This occurs when CTRL-C is pressed - we should exit silently
				return nil
			}
			return errors.MaybeAddStack(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		_ = rl.SaveHistory(line)

		if line == `\q` {
			return nil
		}
		lines, err := s.Execute(line)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		for _, l := range lines {
			fmt.Println(l)
		}
	}
}

// Execute runs one shell line - a backslash command or a formula - and
// returns the lines to print.
func (s *Shell) Execute(line string) ([]string, error) {
	if strings.HasPrefix(line, `\`) {
		return s.executeCommand(line)
	}
	return s.executeFormula(line)
}

func (s *Shell) executeCommand(line string) ([]string, error) {
	parts := strings.Fields(line)
	switch parts[0] {
	case `\load`:
		if len(parts) != 2 {
			return nil, errors.NewInvalidConfigurationError(`usage: \load <file.csv>`)
		}
		if err := s.Load(parts[1]); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("loaded %d rows, %d columns", s.table.Rows.RowCount(), s.table.Rows.ColumnCount())}, nil
	case `\strategy`:
		if len(parts) != 2 {
			return []string{string(s.strategy)}, nil
		}
		strategy, err := apply.ParseStrategy(parts[1])
		if err != nil {
			return nil, err
		}
		s.strategy = strategy
		return []string{"strategy set to " + string(strategy)}, nil
	case `\cols`:
		if s.table == nil {
			return nil, errors.NewInvalidConfigurationError(`no table loaded - use \load <file.csv>`)
		}
		lines := make([]string, len(s.table.ColNames))
		for i, name := range s.table.ColNames {
			lines[i] = fmt.Sprintf("%s %s", name, s.table.ColTypes[i].Type)
		}
		return lines, nil
	default:
		return nil, errors.NewInvalidConfigurationError("unknown command " + parts[0])
	}
}

func (s *Shell) executeFormula(line string) ([]string, error) {
	if s.table == nil {
		return nil, errors.NewInvalidConfigurationError(`no table loaded - use \load <file.csv>`)
	}
	formula, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	fn, err := formula.RowFunc()
	if err != nil {
		return nil, err
	}
	res, err := apply.Apply(s.table.Rows, s.table.ColNames, fn, nil, s.strategy)
	if err != nil {
		return nil, err
	}
	if s.formulasCounter != nil {
		s.formulasCounter.Inc()
	}
	return RenderResult(res)
}
