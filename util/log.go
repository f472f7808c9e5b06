package util

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// LogFn receives one formatted diagnostic line. Loggers are carried on the
// context; a context without a logger drops all lines.
type LogFn func(lvl Lvl, line string)

type Lvl int

type logger struct {
	fs []LogFn
	sync.Mutex
}

type logKey struct{}

const (
	DEBUG Lvl = iota
	INFO
	WARN
	ERROR
)

func Debugf(ctx context.Context, tpl string, args ...any) { Logf(ctx, DEBUG, tpl, args...) }
func Infof(ctx context.Context, tpl string, args ...any)  { Logf(ctx, INFO, tpl, args...) }
func Warnf(ctx context.Context, tpl string, args ...any)  { Logf(ctx, WARN, tpl, args...) }
func Errorf(ctx context.Context, tpl string, args ...any) { Logf(ctx, ERROR, tpl, args...) }

// WithLog returns a context whose logger forwards lines at or above min to f.
// Additional calls append to an existing logger rather than replacing it.
func WithLog(ctx context.Context, min Lvl, f LogFn) context.Context {
	g := func(lvl Lvl, line string) {
		if lvl >= min {
			f(lvl, line)
		}
	}
	if l, ok := ctx.Value(logKey{}).(*logger); ok {
		l.Lock()
		l.fs = append(l.fs, g)
		l.Unlock()
		return ctx
	}
	return context.WithValue(ctx, logKey{}, &logger{fs: []LogFn{g}})
}

// StderrLog is a LogFn writing lines through the stdlib logger.
func StderrLog(lvl Lvl, line string) { log.Printf("%s %s", lvl, line) }

func Logf(ctx context.Context, lvl Lvl, tpl string, args ...any) {
	l, ok := ctx.Value(logKey{}).(*logger)
	if !ok {
		return
	}
	line := fmt.Sprintf(tpl, args...)
	l.Lock()
	defer l.Unlock()
	for _, f := range l.fs {
		f(lvl, line)
	}
}

func (l Lvl) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		panic(fmt.Errorf("bad lvl: %d", l))
	}
}
