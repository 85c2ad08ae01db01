package logging

import "reflect"

// DebugLogger is the subset of *zap.SugaredLogger that library code logs
// through.
type DebugLogger interface {
	Debugw(msg string, keysAndValues ...interface{})
}

// Debugw logs msg with structured context if log is set. A nil interface
// and a typed nil pointer are both treated as unset.
func Debugw(log DebugLogger, msg string, keysAndValues ...interface{}) {
	if isNilValue(log) {
		return
	}
	log.Debugw(msg, keysAndValues...)
}

func isNilValue(i interface{}) bool {
	if i == nil {
		return true
	}
	rv := reflect.ValueOf(i)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
