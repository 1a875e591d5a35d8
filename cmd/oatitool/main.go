// oatitool is a CLI utility for inspecting OATI spline documents.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/splinecast/pkg/oati"
	"github.com/Faultbox/splinecast/pkg/spline"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "tracks", "ls":
		cmdTracks(args)
	case "sample":
		cmdSample(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oatitool - OATI spline document utility

Usage:
  oatitool <command> [options]

Commands:
  info <scene.oati.json>            Show document information
  tracks [-v] <scene.oati.json>     List spline tracks
  sample [options] <scene.oati.json> [track]
                                    Evaluate track positions at a time

Sample options:
  -t <seconds>   Sample time in seconds (default 0)
  -p <progress>  Sample position as 0-1 progress (overrides -t)
  -r <n>         Samples per curve segment (default 20)

Examples:
  oatitool info scene.oati.json
  oatitool tracks -v scene.oati.json
  oatitool sample -p 0.5 scene.oati.json Path001`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: oatitool info <scene.oati.json>")
		os.Exit(1)
	}

	asset, err := oati.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	md := asset.Metadata
	fmt.Printf("Document:    %s\n", args[0])
	fmt.Printf("Generator:   %s (v%g)\n", md.Generator, md.Version)
	fmt.Printf("Export type: %s\n", md.ExportType)
	fmt.Printf("Curve type:  %s\n", md.CurveType)
	fmt.Printf("Coordinates: %s\n", md.CoordinateSystem)
	fmt.Printf("Frames:      %d-%d @ %g fps\n", md.FrameStart, md.FrameEnd, asset.FrameRateOrDefault())
	fmt.Printf("Closed:      %v\n", md.Closed)
	fmt.Printf("Duration:    %.2fs\n", asset.Duration())
	fmt.Printf("Splines:     %d\n", len(asset.Splines))
	fmt.Printf("Keyframes:   %d\n", asset.TotalKeyframes())
}

func cmdTracks(args []string) {
	fs := flag.NewFlagSet("tracks", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Show per-frame detail")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: oatitool tracks [-v] <scene.oati.json>")
		os.Exit(1)
	}

	asset, err := oati.ParseFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i := range asset.Splines {
		s := &asset.Splines[i]
		kind := "points"
		if len(s.Frames) > 0 && s.Frames[0].HasCurves() {
			kind = "curves"
		}
		fmt.Printf("%-24s %6s  %4d frames  max frame %d\n", s.Name, kind, len(s.Frames), s.MaxFrame())

		if *verbose {
			for j := range s.Frames {
				f := &s.Frames[j]
				if f.HasCurves() {
					cps := 0
					for _, c := range f.Curves {
						cps += len(c.Points)
					}
					fmt.Printf("    frame %4d  %d curves, %d control points\n", f.Frame, len(f.Curves), cps)
				} else {
					fmt.Printf("    frame %4d  %d points\n", f.Frame, len(f.Points))
				}
			}
		}
	}
}

func cmdSample(args []string) {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	at := fs.Float64("t", 0, "Sample time in seconds")
	progress := fs.Float64("p", -1, "Sample position as 0-1 progress (overrides -t)")
	resolution := fs.Int("r", spline.DefaultResolution, "Samples per curve segment")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: oatitool sample [options] <scene.oati.json> [track]")
		os.Exit(1)
	}

	asset, err := oati.ParseFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player, err := spline.New(asset, spline.WithResolution(*resolution))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *progress >= 0 {
		player.SetProgress(*progress)
	} else {
		player.SetTime(*at)
	}

	if fs.NArg() > 1 {
		tr := player.Track(fs.Arg(1))
		if tr == nil {
			fmt.Fprintf(os.Stderr, "Track not found: %s\n", fs.Arg(1))
			os.Exit(1)
		}
		printTrack(tr)
		return
	}

	for _, tr := range player.Tracks() {
		printTrack(tr)
	}
}

func printTrack(tr *spline.Track) {
	buf := tr.Buffer()
	fmt.Printf("%s: %d positions\n", tr.Name, tr.PositionCount())
	for i := 0; i+2 < len(buf); i += 3 {
		fmt.Printf("  %10.4f %10.4f %10.4f\n", buf[i], buf[i+1], buf[i+2])
	}
}
