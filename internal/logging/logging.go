// Package logging is the process-wide structured logger. Front ends call
// Setup once; everything else logs through the package functions.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log level and sink.
type Options struct {
	Level string
	// File, when set, routes output to a size-rotated file instead of
	// stderr. Terminal front ends must set it so logs do not corrupt the
	// screen.
	File       string
	MaxSizeMB  int
	MaxBackups int
	JSON       bool
}

var std = logrus.New()

// Logger exposes the underlying logger.
func Logger() *logrus.Logger { return std }

// Setup configures the package logger. The returned closer releases the log
// file, if any.
func Setup(opts Options) (io.Closer, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
		if err != nil {
			return nopCloser{}, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}
	std.SetLevel(level)

	if opts.JSON {
		std.SetFormatter(&logrus.JSONFormatter{})
	} else {
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: opts.File != ""})
	}

	if opts.File == "" {
		std.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}
	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	sink := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: opts.MaxBackups,
	}
	std.SetOutput(sink)
	return sink, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func WithField(key string, value any) *logrus.Entry { return std.WithField(key, value) }

func WithFields(fields logrus.Fields) *logrus.Entry { return std.WithFields(fields) }

func WithError(err error) *logrus.Entry { return std.WithError(err) }

func Debugf(format string, args ...any) { std.Debugf(format, args...) }

func Info(args ...any) { std.Info(args...) }

func Infof(format string, args ...any) { std.Infof(format, args...) }

func Warnf(format string, args ...any) { std.Warnf(format, args...) }

func Error(args ...any) { std.Error(args...) }

func Errorf(format string, args ...any) { std.Errorf(format, args...) }

func Fatalf(format string, args ...any) { std.Fatalf(format, args...) }
