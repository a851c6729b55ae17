package report

import (
	"go.uber.org/zap"
)

// ZapSink logs events through a zap logger. Decisions are logged at debug
// level unless Verbose is set, warnings always at warn level.
type ZapSink struct {
	logger  *zap.Logger
	verbose bool
}

// NewZapSink returns a sink writing to l.
func NewZapSink(l *zap.Logger, verbose bool) *ZapSink {
	return &ZapSink{logger: l, verbose: verbose}
}

// Emit logs e.
func (s *ZapSink) Emit(e Event) {
	fields := make([]zap.Field, 0, 6)
	if e.Name != "" {
		fields = append(fields, zap.String("name", e.Name))
	}
	if !e.New.IsNil() {
		fields = append(fields, zap.Stringer("uuid", e.New))
	}
	if !e.Old.IsNil() {
		fields = append(fields, zap.Stringer("old", e.Old))
	}
	if e.Timestamp != 0 {
		fields = append(fields, zap.Int64("timestamp", e.Timestamp))
	}
	if e.Source != "" {
		fields = append(fields, zap.String("source", e.Source))
	}
	if e.Detail != "" {
		fields = append(fields, zap.String("detail", e.Detail))
	}

	msg := message(e.Kind)
	switch {
	case e.Kind.Warning():
		s.logger.Warn(msg, fields...)
	case s.verbose && e.Kind != KindInserted:
		s.logger.Info(msg, fields...)
	default:
		s.logger.Debug(msg, fields...)
	}
}

func message(k Kind) string {
	switch k {
	case KindInserted:
		return "Name mapped"
	case KindReplaced:
		return "New UUID found, replacing"
	case KindSkipped:
		return "Older UUID found, skipping"
	case KindInvalidName:
		return "Name has illegal characters"
	case KindMalformedIdentifier:
		return "Malformed UUID, record skipped"
	case KindMissingAccountName:
		return "Account name not found"
	case KindUnreadableProfile:
		return "Profile could not be read, record skipped"
	case KindDuplicateProfile:
		return "UUID already read from another profile, record skipped"
	case KindUnseenIdentifier:
		return "Mapped UUID has no timestamp"
	case KindReplacedDuringLoad:
		return "Replaced UUID during cache load"
	case KindDuplicateCacheEntry:
		return "UUID duplicated in cache"
	default:
		return string(k)
	}
}
