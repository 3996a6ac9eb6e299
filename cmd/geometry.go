package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/golden-spiral/engine"
	"github.com/lixenwraith/golden-spiral/scene"
	"github.com/lixenwraith/golden-spiral/viewport"
	"github.com/lixenwraith/golden-spiral/vmath"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formatText = "text"
	formatJSON = "json"
)

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func toPoint(v vmath.Vec2) point { return point{X: v.X, Y: v.Y} }

type squareDump struct {
	Index      int     `json:"index"`
	Magnitude  int     `json:"magnitude"`
	Position   point   `json:"position"`
	Size       float64 `json:"size"`
	ColorIndex int     `json:"color_index"`
	Label      string  `json:"label"`
}

type arcDump struct {
	Center     point   `json:"center"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"start_angle"`
	Sweep      float64 `json:"sweep"`
}

type revealDump struct {
	Phase        int     `json:"phase"`
	Squares      int     `json:"squares"`
	ArcsFull     int     `json:"arcs_full"`
	PartialSweep float64 `json:"partial_sweep"`
}

// geometryDump is the serialized form of a composed frame
type geometryDump struct {
	Count        int          `json:"count"`
	Viewport     point        `json:"viewport"`
	Progress     float64      `json:"progress"`
	Scale        float64      `json:"scale"`
	Offset       point        `json:"offset"`
	ClosestRatio int          `json:"closest_ratio_index"`
	Diagnostic   string       `json:"diagnostic"`
	Reveal       revealDump   `json:"reveal"`
	Squares      []squareDump `json:"squares"`
	Arcs         []arcDump    `json:"arcs"`
}

func newGeometryDump(f scene.Frame) geometryDump {
	l := f.Layout
	d := geometryDump{
		Count:        l.Count,
		Viewport:     point{X: l.Viewport.Width, Y: l.Viewport.Height},
		Progress:     f.State.Progress,
		Scale:        l.Scale,
		Offset:       toPoint(l.Offset),
		ClosestRatio: l.Closest,
		Diagnostic:   l.Diagnostic,
		Reveal: revealDump{
			Phase:        f.Reveal.Phase,
			Squares:      f.Reveal.Squares,
			ArcsFull:     f.Reveal.ArcsFull,
			PartialSweep: f.Reveal.PartialSweep,
		},
	}
	for _, sq := range f.VisibleSquares() {
		d.Squares = append(d.Squares, squareDump{
			Index:      sq.Index,
			Magnitude:  sq.Magnitude,
			Position:   toPoint(sq.Position),
			Size:       sq.Size,
			ColorIndex: sq.ColorIndex,
			Label:      sq.Label,
		})
	}
	for _, a := range f.VisibleArcs() {
		d.Arcs = append(d.Arcs, arcDump{
			Center:     toPoint(a.Center),
			Radius:     a.Radius,
			StartAngle: a.StartAngle,
			Sweep:      a.Sweep,
		})
	}
	return d
}

func newGeometryCmd(a *app) *cobra.Command {
	var (
		format   string
		progress float64
	)

	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print fitted squares and arcs for a viewport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q, want %s or %s", format, formatText, formatJSON)
			}

			st, err := engine.NewAnimationState(a.cfg.Spiral.Squares)
			if err != nil {
				return err
			}
			st.SetProgress(progress)

			vp := viewport.Viewport{Width: a.cfg.Viewport.Width, Height: a.cfg.Viewport.Height}
			f, err := scene.Compose(a.cfg.Spiral.Squares, vp, st)
			if err != nil {
				return err
			}
			a.log.Debug("geometry fitted", zap.String("diagnostic", f.Layout.Diagnostic))

			dump := newGeometryDump(f)
			if format == formatJSON {
				out, err := json.MarshalIndent(dump, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode geometry: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			return writeGeometryText(cmd.OutOrStdout(), dump)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&format, "format", "f", formatText, "output format: text or json")
	flags.Float64VarP(&progress, "progress", "p", 1, "animation progress in [0, 1]")
	flags.Float64("width", 0, "viewport width")
	flags.Float64("height", 0, "viewport height")
	bind(a.v, flags.Lookup("width"), "viewport.width")
	bind(a.v, flags.Lookup("height"), "viewport.height")
	return cmd
}

func writeGeometryText(w io.Writer, d geometryDump) error {
	fmt.Fprintln(w, d.Diagnostic)
	fmt.Fprintf(w, "scale=%.4f offset=(%.3f, %.3f) progress=%.3f phase=%d\n\n",
		d.Scale, d.Offset.X, d.Offset.Y, d.Progress, d.Reveal.Phase)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "square\tmagnitude\tx\ty\tsize\tcolor\t")
	for _, sq := range d.Squares {
		fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\t%.3f\t%d\t\n",
			sq.Index, sq.Magnitude, sq.Position.X, sq.Position.Y, sq.Size, sq.ColorIndex)
	}
	if len(d.Arcs) > 0 {
		fmt.Fprintln(tw, "\t\t\t\t\t\t")
		fmt.Fprintln(tw, "arc\tcenter x\tcenter y\tradius\tstart\tsweep\t")
		for i, arc := range d.Arcs {
			fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%.3f\t%.1f\t%.1f\t\n",
				i, arc.Center.X, arc.Center.Y, arc.Radius, arc.StartAngle, arc.Sweep)
		}
	}
	return tw.Flush()
}
