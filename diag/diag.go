// Package diag implements the structured diagnostic sink: leveled records
// grouped into flush cohorts, with error-limit handling and a Fatal level
// that flushes then aborts the current lexer call.
//
// Grounded on original_source/lib/kos/diag.c (k_diag_emit/k_diag_flush) and
// lib/laye/diag.c for call-site shape; styled after the teacher's
// ErrorList/Error pattern in parser/errors.go.
package diag

import "github.com/laye-lang/choir-c/source"

// Level orders diagnostic severities from least to most severe.
type Level int

const (
	// Ignore marks a diagnostic that should be dropped entirely, and also
	// suppresses the next Note (notes attach only to real diagnostics).
	Ignore Level = iota
	// Note attaches to the previous non-note record in the current group.
	Note
	Remark
	Warning
	Error
	// Fatal flushes the current group and then aborts lexing.
	Fatal
)

// String names a Level for rendering.
func (l Level) String() string {
	switch l {
	case Ignore:
		return "ignored"
	case Note:
		return "note"
	case Remark:
		return "remark"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal error"
	default:
		return "unknown"
	}
}

// Record is one structured diagnostic: a level, the source location it
// refers to, and a message. Source may be nil for records with no
// associated location (the synthetic error-limit record).
type Record struct {
	Level      Level
	Source     *source.Source
	ByteOffset source.Location
	Message    string
}

// Group is a primary diagnostic plus zero or more attached notes, the unit
// delivered to a Callback.
type Group []Record

// Callback receives a flushed Group. The formatted renderer in render.go is
// one implementation; embedders may supply their own.
type Callback func(Group)

// FatalAbort is the panic value Sink.Emit raises after flushing a Fatal
// record, so an embedder can recover it at a call boundary instead of the
// process exiting outright.
type FatalAbort struct {
	Record Record
}

func (f FatalAbort) Error() string {
	return "fatal error: " + f.Record.Message
}

// DefaultErrorLimit is the errorLimit value that leaves a Sink unbounded.
// A non-zero limit passed to New bounds how many Error records are reported
// before the next one is replaced with a single synthetic "error limit
// reached" record and all later ones are silently dropped. Fatal records
// are never dropped by the limit.
const DefaultErrorLimit = 0

// Sink accumulates diagnostics into a pending group and flushes it to a
// Callback. The zero value has no callback and an unbounded error limit;
// use New to wire a callback. A Sink is not safe for concurrent use; it has
// a single owner.
type Sink struct {
	callback Callback

	group Group

	errorCount              int
	errorLimit              int
	hasReportedLimitReached bool
	lastWasIgnored          bool
}

// New returns a Sink that flushes groups to callback. errorLimit of 0
// disables the limit.
func New(callback Callback, errorLimit int) *Sink {
	return &Sink{callback: callback, errorLimit: errorLimit}
}

// ErrorCount reports how many Error-or-worse records have been accepted so
// far. The synthetic limit record and the errors dropped by the limit are
// not counted.
func (s *Sink) ErrorCount() int {
	return s.errorCount
}

// Flush delivers the pending group to the callback, if non-empty, and
// clears it.
func (s *Sink) Flush() {
	if len(s.group) == 0 {
		return
	}
	if s.callback != nil {
		s.callback(s.group)
	}
	s.group = nil
}

// Emit records a diagnostic, applying grouping, ignore-suppression, and
// error-limit rules before appending it to the pending group. A Fatal
// record flushes the group and then panics with FatalAbort; callers at a
// suitable boundary (e.g. the top of a driver's per-file loop) may recover
// it.
func (s *Sink) Emit(r Record) {
	if r.Level != Note {
		s.Flush()
	}

	if r.Level == Error && s.errorLimit > 0 && s.errorCount >= s.errorLimit {
		if !s.hasReportedLimitReached {
			s.hasReportedLimitReached = true
			if s.callback != nil {
				s.callback(Group{{Level: Error, Message: "error limit reached"}})
			}
		}
		return
	}

	if r.Level == Ignore {
		s.lastWasIgnored = true
		return
	}

	if r.Level == Note && s.lastWasIgnored {
		return
	}

	if r.Level >= Error {
		s.errorCount++
	}

	s.lastWasIgnored = false
	s.group = append(s.group, r)

	if r.Level == Fatal {
		s.Flush()
		panic(FatalAbort{Record: r})
	}
}

// Deinit flushes any pending group. Call it once a Sink is no longer
// needed to ensure no diagnostics are silently lost.
func (s *Sink) Deinit() {
	s.Flush()
}
