package queryflags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/brimdata/blockflow/pkg/bytesize"
	"github.com/brimdata/blockflow/runtime/limits"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"
)

var ErrConfigFormat = errors.New("config file must end in .yaml, .yml, or .toml")

// Config is the DISTINCT configuration that may be loaded from a file.
// Values given on the command line take precedence.
type Config struct {
	Keys      []string        `yaml:"keys" toml:"keys"`
	MaxRows   uint64          `yaml:"max_rows" toml:"max_rows"`
	MaxBytes  bytesize.Size   `yaml:"max_bytes" toml:"max_bytes"`
	Overflow  limits.Overflow `yaml:"overflow" toml:"overflow"`
	LimitHint uint64          `yaml:"limit" toml:"limit"`
}

type Flags struct {
	Config
	Stats bool

	configPath string
	keys       string
	fs         *flag.FlagSet
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.keys, "k", "", "comma-separated key columns (default all columns)")
	fs.Uint64Var(&f.MaxRows, "distinct.maxrows", 0, "maximum number of distinct rows (0 for no limit)")
	fs.Var(&f.MaxBytes, "distinct.maxbytes", "maximum size of the distinct set in B, KiB, MiB, etc. or % of system memory (0 for no limit)")
	fs.TextVar(&f.Overflow, "distinct.overflow", limits.OverflowFail, "action when a limit is exceeded [fail,truncate]")
	fs.Uint64Var(&f.LimitHint, "limit", 0, "stop after this many distinct rows, checked between blocks (0 for no limit)")
	fs.StringVar(&f.configPath, "config", "", "YAML or TOML file with keys, max_rows, max_bytes, overflow, and limit")
	fs.BoolVar(&f.Stats, "stats", false, "display operator metrics on stderr")
}

// Init is called after flags have been parsed.  It merges the config file,
// if any, under the flags set on the command line.
func (f *Flags) Init() error {
	if f.keys != "" {
		f.Keys = strings.Split(f.keys, ",")
	}
	if f.configPath == "" {
		return nil
	}
	conf, err := LoadConfig(f.configPath)
	if err != nil {
		return err
	}
	set := make(map[string]bool)
	if f.fs != nil {
		f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	}
	if !set["k"] {
		f.Keys = conf.Keys
	}
	if !set["distinct.maxrows"] {
		f.MaxRows = conf.MaxRows
	}
	if !set["distinct.maxbytes"] {
		f.MaxBytes = conf.MaxBytes
	}
	if !set["distinct.overflow"] {
		f.Overflow = conf.Overflow
	}
	if !set["limit"] {
		f.LimitHint = conf.LimitHint
	}
	return nil
}

func (f *Flags) Limits() limits.Limits {
	return limits.Limits{
		MaxRows:  f.MaxRows,
		MaxBytes: f.MaxBytes.Bytes,
		Overflow: f.Overflow,
	}
}

// LoadConfig reads a Config from a YAML or TOML file chosen by the file
// extension.
func LoadConfig(path string) (Config, error) {
	var conf Config
	b, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &conf)
	case ".toml":
		err = toml.Unmarshal(b, &conf)
	default:
		return conf, fmt.Errorf("%s: %w", path, ErrConfigFormat)
	}
	if err != nil {
		return conf, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// PrintStats writes the metrics gathered by g to w in the Prometheus text
// exposition format if -stats was given.
func (f *Flags) PrintStats(w io.Writer, g prometheus.Gatherer) error {
	if !f.Stats {
		return nil
	}
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
