package logflags

import (
	"flag"

	"github.com/brimdata/blockflow/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Flags struct {
	Conf logger.Config
}

func (l *Flags) SetFlags(fs *flag.FlagSet) {
	l.Conf.Level = zapcore.WarnLevel
	l.Conf.Mode = logger.FileModeAppend
	fs.Var(&l.Conf.Level, "log.level", "logging level")
	fs.StringVar(&l.Conf.Path, "log.path", "stderr", "path to send logs (values: stderr, stdout, path in file system)")
	fs.Var(&l.Conf.Mode, "log.filemode", "mode for writing to a log file (values: append, truncate, rotate)")
	fs.BoolVar(&l.Conf.DevMode, "log.devmode", false, "development mode (if enabled dpanic level logs will cause a panic)")
	fs.IntVar(&l.Conf.MaxSize, "log.maxsize", 100, "size in megabytes at which a rotated log file rolls over")
	fs.IntVar(&l.Conf.MaxBackups, "log.maxbackups", 0, "number of rotated log files to keep (0 keeps all)")
}

func (l *Flags) Open() (*zap.Logger, error) {
	return logger.New(l.Conf)
}
