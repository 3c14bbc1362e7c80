package hooks

import (
	"github.com/sirupsen/logrus"
)

// TargetField names the logrus field that carries a record's target.
const TargetField = "target"

type targetHook struct {
	target string
}

// NewTargetHook returns a hook that stamps records lacking a target with the given one.
func NewTargetHook(target string) targetHook {
	return targetHook{target: target}
}

func (hook targetHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook targetHook) Fire(entry *logrus.Entry) error {
	if t, ok := entry.Data[TargetField].(string); ok && t != "" {
		return nil
	}
	entry.Data[TargetField] = hook.target
	return nil
}
