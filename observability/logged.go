package observability

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbukum/enumkit/enumerator"
	"github.com/kbukum/enumkit/logger"
)

// LoggedIter logs every element its parent yields at debug level, tagged with
// a per-traversal session id, and logs once when the parent runs out.
type LoggedIter[T any] struct {
	parent  enumerator.Enumerator[T]
	log     *logger.Logger
	session string
	index   int
	done    bool
}

// Logged wraps parent with debug logging under the given pipeline name.
// Element values are only read for logging when debug output is enabled, in
// which case Current is called once more per element; transforms upstream
// must tolerate that, as they must for any repeated Current.
func Logged[T any](parent enumerator.Enumerator[T], log *logger.Logger, pipeline string) *LoggedIter[T] {
	session := uuid.NewString()
	return &LoggedIter[T]{
		parent:  parent,
		log:     log.WithFields(logger.Fields(logger.FieldPipeline, pipeline, logger.FieldSession, session)),
		session: session,
	}
}

// Session returns the id attached to every log line of this traversal.
func (it *LoggedIter[T]) Session() string { return it.session }

func (it *LoggedIter[T]) HasCurrent() bool {
	ok := it.parent.HasCurrent()
	if !ok && !it.done {
		it.done = true
		it.log.Debug("enumerator exhausted", logger.Fields(logger.FieldCount, it.index))
	}
	return ok
}

func (it *LoggedIter[T]) Current() T { return it.parent.Current() }

func (it *LoggedIter[T]) Advance() {
	if it.log.Enabled(zerolog.DebugLevel) && it.parent.HasCurrent() {
		it.log.Debug("element", logger.Fields(logger.FieldIndex, it.index, logger.FieldValue, it.parent.Current()))
	}
	it.parent.Advance()
	it.index++
}
