package charm

import (
	"errors"
	"flag"
	"io"
	"strings"
)

type instance struct {
	spec    *Spec
	command Command
	flags   *flag.FlagSet
}

type path []instance

func (p path) last() instance {
	return p[len(p)-1]
}

func (p path) run(args []string) error {
	if len(p) == 0 {
		return NeedHelp
	}
	return p.last().command.Run(args)
}

func newFlagSet(spec *Spec) (*flag.FlagSet, *bool, *bool) {
	fs := flag.NewFlagSet(spec.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	help := fs.Bool("h", false, "display help")
	fs.BoolVar(help, "help", false, "display help")
	hidden := fs.Bool("hidden", false, "show hidden options")
	return fs, help, hidden
}

// parse instantiates the command for spec and its descendants named by
// args.  When leaf is true, an internal leaf command gets its leaf flags,
// and ErrNotLeaf is returned if a subcommand follows it instead.
func parse(spec *Spec, args []string, parent Command, leaf bool) (path, []string, bool, error) {
	fs, help, hidden := newFlagSet(spec)
	cmd, err := spec.New(parent, fs)
	if err != nil {
		return nil, nil, false, err
	}
	if leaf && spec.InternalLeaf {
		if il, ok := cmd.(InternalLeaf); ok {
			il.SetLeafFlags(fs)
		}
	}
	p := path{{spec, cmd, fs}}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return p, nil, *hidden, NeedHelp
		}
		return p, nil, *hidden, err
	}
	if *help {
		return p, nil, *hidden, NeedHelp
	}
	rest := fs.Args()
	if len(rest) > 0 {
		if child := spec.lookupSub(rest[0]); child != nil {
			if leaf && spec.InternalLeaf {
				return nil, nil, false, ErrNotLeaf
			}
			sub, rest, showHidden, err := parse(child, rest[1:], cmd, true)
			return append(p, sub...), rest, *hidden || showHidden, err
		}
	}
	return p, rest, *hidden, nil
}

// parseHelp returns the path of commands named in args for the purpose
// of displaying help.  Flag errors are ignored.
func parseHelp(spec *Spec, args []string) (path, error) {
	var p path
	var parent Command
	for {
		var next *Spec
		for k, arg := range args {
			if strings.HasPrefix(arg, "-") {
				continue
			}
			if next = spec.lookupSub(arg); next != nil {
				args = args[k+1:]
				break
			}
		}
		fs, _, _ := newFlagSet(spec)
		cmd, err := spec.New(parent, fs)
		if err != nil {
			return nil, err
		}
		if next == nil && spec.InternalLeaf {
			if il, ok := cmd.(InternalLeaf); ok {
				il.SetLeafFlags(fs)
			}
		}
		p = append(p, instance{spec, cmd, fs})
		if next == nil {
			return p, nil
		}
		spec, parent = next, cmd
	}
}
