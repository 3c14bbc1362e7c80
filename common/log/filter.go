package log

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

var levels = map[string]logrus.Level{
	"trace": logrus.TraceLevel,
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
}

// Directive enables records at Level and above for Target and its children.
// An empty Target applies to every target.
type Directive struct {
	Target string
	Level  logrus.Level

	pattern glob.Glob
}

func (d Directive) matches(target string) bool {
	switch {
	case d.Target == "":
		return true
	case d.pattern != nil:
		return d.pattern.Match(target)
	default:
		return target == d.Target || strings.HasPrefix(target, d.Target+".")
	}
}

// Literal targets beat patterns, longer literals beat shorter ones, the default comes last.
func (d Directive) specificity() int {
	switch {
	case d.Target == "":
		return 0
	case d.pattern != nil:
		return 1
	default:
		return 2 + len(d.Target)
	}
}

// Filter decides which records reach the log sink.
type Filter struct {
	directives []Directive
}

// ParseFilter parses a comma-separated list of "target=level" or bare "level" directives.
// A bare token that is not a level enables every level for that target.
// Invalid directives are dropped; the returned error lists them alongside a usable Filter.
func ParseFilter(spec string) (*Filter, error) {
	f := &Filter{}
	var invalid []string
	for _, raw := range strings.Split(spec, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		d, err := parseDirective(raw)
		if err != nil {
			invalid = append(invalid, err.Error())
			continue
		}
		f.directives = append(f.directives, d)
	}
	sort.SliceStable(f.directives, func(i, j int) bool {
		return f.directives[i].specificity() > f.directives[j].specificity()
	})
	if len(invalid) > 0 {
		return f, fmt.Errorf("ignoring invalid log directives: %s", strings.Join(invalid, "; "))
	}
	return f, nil
}

func parseDirective(raw string) (Directive, error) {
	idx := strings.Index(raw, "=")
	if idx < 0 {
		if level, ok := levels[strings.ToLower(raw)]; ok {
			return Directive{Level: level}, nil
		}
		return newDirective(raw, logrus.TraceLevel)
	}
	target, levelStr := strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:])
	if target == "" {
		return Directive{}, fmt.Errorf("%q has no target", raw)
	}
	level, ok := levels[strings.ToLower(levelStr)]
	if !ok {
		return Directive{}, fmt.Errorf("%q has unknown level %q", raw, levelStr)
	}
	return newDirective(target, level)
}

func newDirective(target string, level logrus.Level) (Directive, error) {
	d := Directive{Target: target, Level: level}
	if strings.ContainsAny(target, "*?[{") {
		g, err := glob.Compile(target, '.')
		if err != nil {
			return Directive{}, fmt.Errorf("%q is not a valid pattern: %v", target, err)
		}
		d.pattern = g
	}
	return d, nil
}

// IsEmpty reports whether the filter lets nothing through.
func (f *Filter) IsEmpty() bool {
	return f == nil || len(f.directives) == 0
}

// Enabled reports whether a record for target at level should be written.
// The most specific matching directive decides.
func (f *Filter) Enabled(target string, level logrus.Level) bool {
	if f == nil {
		return false
	}
	for _, d := range f.directives {
		if d.matches(target) {
			return level <= d.Level
		}
	}
	return false
}

// MaxLevel is the most verbose level any directive enables.
func (f *Filter) MaxLevel() logrus.Level {
	max := logrus.PanicLevel
	if f == nil {
		return max
	}
	for _, d := range f.directives {
		if d.Level > max {
			max = d.Level
		}
	}
	return max
}

func (f *Filter) Directives() []Directive {
	if f == nil {
		return nil
	}
	return append([]Directive(nil), f.directives...)
}
