// Command schedinfo prints the flattened segment table of noise schedules.
//
// Usage:
//
//	schedinfo [flags] [recipe-name ...]
//
// Without arguments it prints every built-in recipe. With -chaos set it
// prints the procedural schedule for the given controls instead.
//
// Examples:
//
//	schedinfo "12-Step: The Golden Curve (Best General)"
//	schedinfo -scale 0.5 "9-Step: The Steep Cliff (Cleanest)"
//	schedinfo -chaos 0.7 -steps 12 -segments 4
//	schedinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/runningoverglowies/algo-noisesched/preview"
	"github.com/runningoverglowies/algo-noisesched/sched/chaos"
	"github.com/runningoverglowies/algo-noisesched/sched/recipes"
	"github.com/runningoverglowies/algo-noisesched/sched/schedule"
)

func main() {
	scale := flag.Float64("scale", 1.0, "global strength multiplier")
	chaosFactor := flag.Float64("chaos", -1, "chaos factor in [0,1]; setting it selects the procedural generator")
	steps := flag.Int("steps", 12, "sampler step count for the procedural generator")
	segments := flag.Int("segments", 4, "decay chunk count for the procedural generator")
	samples := flag.Int("samples", 0, "also print the strength curve sampled at this many uniform points (>= 2)")
	list := flag.Bool("list", false, "list built-in recipe names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: schedinfo [flags] [recipe-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the flattened segment table of noise schedules.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every built-in recipe.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  schedinfo \"12-Step: The Golden Curve (Best General)\"\n")
		fmt.Fprintf(os.Stderr, "  schedinfo -chaos 0.7 -steps 12 -segments 4\n")
		fmt.Fprintf(os.Stderr, "  schedinfo -samples 16 \"9-Step: Texture Fader (High Detail)\"\n")
		fmt.Fprintf(os.Stderr, "  schedinfo -list\n")
	}
	flag.Parse()

	lib := recipes.Default()

	if *list {
		for _, name := range lib.Names() {
			fmt.Println(name)
		}
		return
	}

	if *chaosFactor >= 0 {
		s, err := chaos.Generate(chaos.Params{
			Steps:         *steps,
			NumSegments:   *segments,
			ChaosFactor:   *chaosFactor,
			StrengthScale: *scale,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		label := fmt.Sprintf("chaos=%.2f steps=%d segments=%d", *chaosFactor, *steps, *segments)
		entries := []namedSchedule{{label, s}}
		printSchedules(entries)
		if *samples > 0 {
			printCurves(entries, *samples)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = lib.Names()
	}

	var entries []namedSchedule
	for _, name := range names {
		s, ok, err := lib.Build(name, schedule.WithStrengthScale(*scale))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown recipe %q (use -list to see available)\n", name)
			continue
		}
		entries = append(entries, namedSchedule{name, s})
	}

	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching recipes\n")
		os.Exit(1)
	}

	printSchedules(entries)

	if *samples > 0 {
		printCurves(entries, *samples)
	}
}

type namedSchedule struct {
	name string
	s    *schedule.Schedule
}

func printSchedules(entries []namedSchedule) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Schedule\tStart\tEnd\tStrength\n")
	fmt.Fprintf(tw, "--------\t-----\t---\t--------\n")

	for _, e := range entries {
		for i, seg := range e.s.Segments() {
			label := ""
			if i == 0 {
				label = e.name
			}
			fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.3f\n", label, seg.Start, seg.End, seg.Strength)
		}
		fmt.Fprintf(tw, "\tmax\t\t%.3f\n", e.s.MaxStrength())
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printCurves(entries []namedSchedule, n int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Schedule\tt\tStrength\n")
	fmt.Fprintf(tw, "--------\t-\t--------\n")

	for _, e := range entries {
		curve, err := preview.Curve(e.s, n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		for i, v := range curve {
			label := ""
			if i == 0 {
				label = e.name
			}
			fmt.Fprintf(tw, "%s\t%.4f\t%.3f\n", label, float64(i)/float64(n), v)
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
