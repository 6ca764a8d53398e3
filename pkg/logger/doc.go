// Package logger provides slog helpers shared across authkit packages:
// a small factory for configured slog.Logger instances and attribute
// constructors with consistent keys (error, user_id, role, component) so
// that boundary diagnostics stay queryable in log aggregation.
//
// # Usage
//
//	import "github.com/monamour-platform/authkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Error("role lookup failed",
//	    logger.Error(err),
//	    logger.UserID(userID),
//	    logger.Component("authority"),
//	)
package logger
