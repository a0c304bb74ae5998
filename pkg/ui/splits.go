package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/cfgsplit/pkg/config"
	"github.com/arthur-debert/cfgsplit/pkg/errors"
	"github.com/arthur-debert/cfgsplit/pkg/split"
)

// SplitRow is one split in a SplitsReport.
type SplitRow struct {
	ID                   string `json:"id" yaml:"id" toml:"id"`
	MachineName          string `json:"machine_name" yaml:"machine_name" toml:"machine_name"`
	Label                string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Weight               int    `json:"weight" yaml:"weight" toml:"weight"`
	Status               bool   `json:"status" yaml:"status" toml:"status"`
	EnabledByEnvironment bool   `json:"enabled_by_environment" yaml:"enabled_by_environment" toml:"enabled_by_environment"`
}

// SplitsReport describes the final split state of a resolution pass.
type SplitsReport struct {
	Environment string     `json:"environment" yaml:"environment" toml:"environment"`
	Split       string     `json:"split,omitempty" yaml:"split,omitempty" toml:"split,omitempty"`
	Applied     []string   `json:"applied" yaml:"applied" toml:"applied"`
	Splits      []SplitRow `json:"splits" yaml:"splits" toml:"splits"`
}

// BuildSplitsReport summarises r. Rows follow weight order.
func BuildSplitsReport(r *config.Resolved) SplitsReport {
	envSplit, _ := split.Name(r.Environment)

	report := SplitsReport{
		Environment: r.Environment.String(),
		Split:       envSplit,
		Applied:     append([]string{}, r.Applied...),
	}
	for _, id := range split.IDs(r.Flags) {
		s := r.Flags[id]
		report.Splits = append(report.Splits, SplitRow{
			ID:                   id,
			MachineName:          split.MachineName(id),
			Label:                s.Label,
			Weight:               s.Weight,
			Status:               s.Status,
			EnabledByEnvironment: id == envSplit,
		})
	}
	return report
}

// RenderSplits writes the split table for r.
func RenderSplits(w io.Writer, r *config.Resolved, f Format) error {
	report := BuildSplitsReport(r)

	f = Resolve(f, w)
	switch f {
	case FormatJSON, FormatTOML, FormatYAML:
		return encode(w, report, f)
	}

	data := pterm.TableData{{"SPLIT", "LABEL", "WEIGHT", "STATUS", "ENV"}}
	for _, row := range report.Splits {
		marker := ""
		if row.EnabledByEnvironment {
			marker = "*"
		}
		data = append(data, []string{
			row.MachineName,
			row.Label,
			strconv.Itoa(row.Weight),
			StatusLabel(row.Status, f),
			marker,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if f != FormatTerminal {
		table = table.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
	}
	rendered, err := table.Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to render split table")
	}

	_, err = fmt.Fprintf(w, "%s %s\n\n%s\n", Heading("Environment:", f), report.Environment, rendered)
	return wrapWrite(err)
}

// RenderResolve writes the split ID the environment enables, or nothing.
func RenderResolve(w io.Writer, r *config.Resolved, f Format) error {
	id, ok := split.Name(r.Environment)

	switch f = Resolve(f, w); f {
	case FormatJSON, FormatTOML, FormatYAML:
		return encode(w, struct {
			Environment string `json:"environment" yaml:"environment" toml:"environment"`
			Split       string `json:"split" yaml:"split" toml:"split"`
		}{r.Environment.String(), id}, f)
	}

	if !ok {
		return nil
	}
	_, err := fmt.Fprintln(w, id)
	return wrapWrite(err)
}
