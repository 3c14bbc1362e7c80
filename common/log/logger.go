// Package log configures the process-wide logrus logger from the BOTTLES_LOG environment
// variable. Records are filtered per target; the target is carried in the "target" field.
package log

import (
	"io"
	"io/ioutil"

	"github.com/sirupsen/logrus"

	"github.com/bottlesdevs/bottles-cli/common/log/hooks"
)

// EnvVar holds the filter directives. Unset or empty disables logging.
const EnvVar = "BOTTLES_LOG"

// DefaultTarget is used for records logged without a target.
const DefaultTarget = "bottles"

// Target returns an entry on the standard logger tagged with target.
func Target(target string) *logrus.Entry {
	return logrus.WithField(hooks.TargetField, target)
}

// Init configures the standard logger. Invalid directives are skipped and reported
// through the returned error; the logger is usable either way.
func Init(spec string, out io.Writer) error {
	return Configure(logrus.StandardLogger(), spec, out)
}

func Configure(l *logrus.Logger, spec string, out io.Writer) error {
	filter, err := ParseFilter(spec)
	if filter.IsEmpty() {
		l.SetOutput(ioutil.Discard)
		l.SetLevel(logrus.PanicLevel)
		return err
	}
	l.SetOutput(out)
	l.SetLevel(filter.MaxLevel())
	l.SetFormatter(&filterFormatter{
		filter: filter,
		next:   &logrus.TextFormatter{FullTimestamp: true, DisableColors: true},
	})
	l.AddHook(hooks.NewTargetHook(DefaultTarget))
	return err
}

// filterFormatter drops records the filter rejects by rendering them as nothing.
type filterFormatter struct {
	filter *Filter
	next   logrus.Formatter
}

func (f *filterFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	target, _ := entry.Data[hooks.TargetField].(string)
	if target == "" {
		target = DefaultTarget
	}
	if !f.filter.Enabled(target, entry.Level) {
		return nil, nil
	}
	return f.next.Format(entry)
}
