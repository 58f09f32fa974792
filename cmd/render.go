package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/metric"
)

// Podium colors for the top three ranks, mirroring the usual gold, silver,
// bronze highlighting.
var (
	goldColor   = color.New(color.FgYellow, color.Bold)
	silverColor = color.New(color.FgHiWhite)
	bronzeColor = color.New(color.FgHiYellow)
)

// renderBoard writes the ranked table for the selected metric.
func renderBoard(ctx context.Context, w io.Writer, svc *app.Service) error {
	def, ok := metric.ByID(svc.SelectedMetric(ctx))
	if !ok {
		def, _ = metric.ByID(metric.DefaultID)
	}

	entries := svc.Board(ctx)
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "no submissions yet")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Team", fmt.Sprintf("Score (%s)", def.Name), "Submitted"})

	data := make([][]string, len(entries))
	for i, e := range entries {
		data[i] = []string{
			rankLabel(e.Rank),
			e.TeamName,
			e.Score,
			e.SubmitTime,
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// rankLabel colors the top three ranks for console output.
func rankLabel(rank int) string {
	s := strconv.Itoa(rank)
	switch rank {
	case 1:
		return goldColor.Sprint(s)
	case 2:
		return silverColor.Sprint(s)
	case 3:
		return bronzeColor.Sprint(s)
	default:
		return s
	}
}
