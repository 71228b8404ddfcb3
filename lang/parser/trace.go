package parser

import "github.com/tliron/commonlog"

// Tracer observes grammar procedures as they are entered and left.
type Tracer interface {
	Enter(rule string)
	Exit(rule string)
}

type logTracer struct {
	log commonlog.Logger
}

func newLogTracer() *logTracer {
	return &logTracer{log: commonlog.GetLogger("tr701.parser")}
}

func (t *logTracer) Enter(rule string) {
	if t.log.AllowLevel(commonlog.Debug) {
		t.log.Debugf("enter <%s>", rule)
	}
}

func (t *logTracer) Exit(rule string) {
	if t.log.AllowLevel(commonlog.Debug) {
		t.log.Debugf("exit <%s>", rule)
	}
}
