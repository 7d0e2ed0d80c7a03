package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	statsStyle  = lipgloss.NewStyle().PaddingLeft(1).Faint(true)
)

// Output renders demo results.
type Output struct {
	w io.Writer
}

// NewOutput creates an Output writing to w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Title prints a styled section title.
func (o *Output) Title(title string) {
	fmt.Fprintln(o.w, titleStyle.Render(title))
}

// Gradients prints the gradient table of a demo run.
func (o *Output) Gradients(output string, rows []gradRow) {
	table := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Order", "Gradient", "Node", "Value")
	for _, r := range rows {
		name := "d" + output + "/d" + r.Node
		if r.Order > 1 {
			name = "d" + output + strconv.Itoa(r.Order) + "/d" + r.Node
		}
		table.Row(strconv.Itoa(r.Order), name, r.GradID, r.Value)
	}
	fmt.Fprintln(o.w, table.Render())
}

// Stats prints tape statistics. payloadBytes is skipped when zero.
func (o *Output) Stats(result *demoResult, payloadBytes uint64) {
	line := fmt.Sprintf("%s records, %s", humanize.Comma(int64(result.Records)),
		humanize.SIWithDigits(result.Elapsed.Seconds(), 1, "s"))
	if payloadBytes > 0 {
		line += fmt.Sprintf(", %s of gradients", humanize.Bytes(payloadBytes))
	}
	fmt.Fprintln(o.w, statsStyle.Render(line))
}

// Metrics prints every metric family gathered from g in the Prometheus text format.
func (o *Output) Metrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(o.w, mf); err != nil {
			return errors.Wrapf(err, "writing metric %s", mf.GetName())
		}
	}
	return nil
}
