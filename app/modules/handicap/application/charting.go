package handicapservice

import (
	"bytes"
	"context"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GenerateLeaderboardChart renders the current leaderboard as a PNG bar
// chart, lowest handicap on the left.
func (s *HandicapService) GenerateLeaderboardChart(ctx context.Context, palette ChartPalette) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "GenerateLeaderboardChart")
	defer span.End()

	entries, err := s.AggregateLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	bars := make([]chart.Value, len(entries))
	for i, entry := range entries {
		bars[i] = chart.Value{
			Label: string(entry.DisplayName),
			Value: float64(entry.Handicap),
			Style: chart.Style{
				FillColor:   drawing.Color(palette.PrimaryLine),
				StrokeColor: drawing.Color(palette.AccentLine),
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title:  "Trip Handicaps",
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: drawing.Color(palette.Background),
		},
		Canvas: chart.Style{
			FillColor: drawing.Color(palette.Background),
		},
		XAxis: chart.Style{
			FontColor: drawing.Color(palette.TextColor),
		},
		YAxis: chart.YAxis{
			Name: "Handicap",
			Style: chart.Style{
				FontColor: drawing.Color(palette.TextColor),
			},
		},
		BarWidth: 40,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No scores recorded yet"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: drawing.Color(palette.Background),
		},
		Canvas: chart.Style{
			FillColor: drawing.Color(palette.Background),
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(drawing.Color(palette.TextColor))
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
