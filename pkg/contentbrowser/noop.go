package contentbrowser

import (
	"context"
	"log/slog"
)

// NoopEventSink is a no-operation implementation of EventSink
// Useful when no event handling is needed or for testing
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// ItemClassified does nothing and returns nil
func (n *NoopEventSink) ItemClassified(ctx context.Context, item *ContentItem) error {
	return nil
}

// PageWritten does nothing and returns nil
func (n *NoopEventSink) PageWritten(ctx context.Context, itemID, key string) error {
	return nil
}

// LinkAdded does nothing and returns nil
func (n *NoopEventSink) LinkAdded(ctx context.Context, link *Link) error {
	return nil
}

// LinkRemoved does nothing and returns nil
func (n *NoopEventSink) LinkRemoved(ctx context.Context, match string, count int) error {
	return nil
}

// LoggingEventSink is an event sink that logs events but takes no other
// action. Useful for development and for the CLI binaries.
type LoggingEventSink struct {
	logger *slog.Logger
}

// NewLoggingEventSink creates a new logging event sink
func NewLoggingEventSink(logger *slog.Logger) EventSink {
	return &LoggingEventSink{logger: logger}
}

// ItemClassified logs the classification result
func (l *LoggingEventSink) ItemClassified(ctx context.Context, item *ContentItem) error {
	l.logger.Info("item classified",
		"id", item.ID, "type", item.Type, "subtype", item.Subtype, "description", item.Description)
	return nil
}

// PageWritten logs the written page key
func (l *LoggingEventSink) PageWritten(ctx context.Context, itemID, key string) error {
	l.logger.Info("page written", "id", itemID, "key", key)
	return nil
}

// LinkAdded logs the registered link
func (l *LoggingEventSink) LinkAdded(ctx context.Context, link *Link) error {
	l.logger.Info("link added", "title", link.Title, "path", link.Path)
	return nil
}

// LinkRemoved logs the removal
func (l *LoggingEventSink) LinkRemoved(ctx context.Context, match string, count int) error {
	l.logger.Info("links removed", "match", match, "count", count)
	return nil
}
