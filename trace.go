package pcomb

import (
	"github.com/tliron/commonlog"
)

// DefaultTraceLoggerName is the commonlog logger used when TraceOpts has
// no Logger.
const DefaultTraceLoggerName = "pcomb"

type TraceOpts struct {
	Name   string           // Label written with every message. Defaults to "parser".
	Logger commonlog.Logger // Defaults to commonlog.GetLogger(DefaultTraceLoggerName).
}

// Trace wraps p and logs every attempt at debug level. The result of p is
// returned unchanged.
//
// Logging goes through commonlog, so nothing is printed unless the program
// has configured a backend, e.g. by importing
// github.com/tliron/commonlog/simple and calling commonlog.Configure.
func Trace[T any](p Parser[T], opts TraceOpts) Func[T] {
	name := opts.Name
	if name == "" {
		name = "parser"
	}
	log := opts.Logger
	if log == nil {
		log = commonlog.GetLogger(DefaultTraceLoggerName)
	}

	return func(in Input) Result[T] {
		if !log.AllowLevel(commonlog.Debug) {
			return p.Parse(in)
		}

		log.Debugf("%s: enter at %s", name, in.Position())
		res := p.Parse(in)
		if res.Ok() {
			log.Debugf("%s: match %q, now at %s", name, res.Remainder.Since(in), res.Remainder.Position())
		} else {
			log.Debugf("%s: no match at %s", name, res.Remainder.Position())
		}
		return res
	}
}
