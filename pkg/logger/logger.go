// Package logger builds zap loggers writing to stderr or a file.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type FileMode string

const (
	FileModeAppend   FileMode = "append"
	FileModeTruncate FileMode = "truncate"
	FileModeRotate   FileMode = "rotate"
)

func (f *FileMode) Set(s string) error {
	switch m := FileMode(s); m {
	case FileModeAppend, FileModeTruncate, FileModeRotate:
		*f = m
		return nil
	}
	return fmt.Errorf("unsupported file mode %q", s)
}

func (f FileMode) String() string {
	return string(f)
}

type Config struct {
	Level zapcore.Level `yaml:"level" toml:"level"`
	// Path is the file logs are written to.  Empty or "stderr" means
	// standard error.
	Path    string   `yaml:"path" toml:"path"`
	Mode    FileMode `yaml:"mode" toml:"mode"`
	DevMode bool     `yaml:"devmode" toml:"devmode"`
	// MaxSize is the size in megabytes at which a rotated log file is
	// rolled over.
	MaxSize    int `yaml:"maxsize" toml:"maxsize"`
	MaxBackups int `yaml:"maxbackups" toml:"maxbackups"`
}

// New returns a logger for conf.
func New(conf Config) (*zap.Logger, error) {
	ws, err := openSink(conf)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(encoder(conf.DevMode), ws, zap.NewAtomicLevelAt(conf.Level))
	opts := []zap.Option{zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if conf.DevMode {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}
	return zap.New(core, opts...), nil
}

func encoder(dev bool) zapcore.Encoder {
	if dev {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func openSink(conf Config) (zapcore.WriteSyncer, error) {
	switch conf.Path {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	switch conf.Mode {
	case "", FileModeAppend:
		return openFile(conf.Path, os.O_APPEND)
	case FileModeTruncate:
		return openFile(conf.Path, os.O_TRUNC)
	case FileModeRotate:
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    conf.MaxSize,
			MaxBackups: conf.MaxBackups,
		}), nil
	}
	return nil, fmt.Errorf("unsupported file mode %q", conf.Mode)
}

func openFile(path string, flag int) (zapcore.WriteSyncer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|flag, 0644)
	if err != nil {
		return nil, err
	}
	return zapcore.Lock(f), nil
}
