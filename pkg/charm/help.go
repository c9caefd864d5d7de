package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
)

var helpOutput io.Writer = os.Stdout

func displayHelp(p path, showHidden bool) {
	writeHelp(helpOutput, p, showHidden)
}

func writeHelp(w io.Writer, p path, showHidden bool) {
	inst := p.last()
	spec := inst.spec
	var names []string
	for _, inst := range p {
		names = append(names, inst.spec.Name)
	}
	fmt.Fprintf(w, "NAME\n    %s - %s\n\n", strings.Join(names, " "), spec.Short)
	fmt.Fprintf(w, "USAGE\n    %s\n\n", spec.Usage)
	hidden := splitList(spec.HiddenFlags)
	redacted := splitList(spec.RedactedFlags)
	var options []*flag.Flag
	inst.flags.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "h", "help", "hidden":
			return
		}
		if !showHidden && slices.Contains(hidden, f.Name) {
			return
		}
		options = append(options, f)
	})
	if len(options) > 0 {
		fmt.Fprintln(w, "OPTIONS")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, f := range options {
			def := f.DefValue
			if slices.Contains(redacted, f.Name) {
				def = "(redacted)"
			}
			if def != "" {
				fmt.Fprintf(tw, "    -%s\t%s (default %q)\n", f.Name, f.Usage, def)
			} else {
				fmt.Fprintf(tw, "    -%s\t%s\n", f.Name, f.Usage)
			}
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
	var children []*Spec
	for _, child := range spec.children {
		if showHidden || !child.Hidden {
			children = append(children, child)
		}
	}
	if len(children) > 0 {
		fmt.Fprintln(w, "COMMANDS")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, child := range children {
			fmt.Fprintf(tw, "    %s\t%s\n", child.Name, child.Short)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
	if long := strings.TrimSpace(spec.Long); long != "" {
		fmt.Fprintln(w, "DESCRIPTION")
		for _, line := range strings.Split(long, "\n") {
			if line == "" {
				fmt.Fprintln(w)
				continue
			}
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
