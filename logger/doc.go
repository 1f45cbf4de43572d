/*
Package logger provides logging functionality to the quiz web server by defining the required behavior in [Logger]
and providing an implementation of it with [StdLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, if [StdLogger] is initialized with [LogLevelWarn],
only [*StdLogger.Warn], [*StdLogger.Error], and [*StdLogger.Fatal] produce messages.

# StdLogger

Log messages emitted by [StdLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/10/14 15:55:21 [DEBUG] quiz/route/resolver.go:88 'navigated' log_context: {"data":{"path":"/quiz/iq","route":"quiz"}}

The log context is a JSON-encoded [*LogContext].
It carries data inessential to the message proper
but which gives a fuller picture of the application state at the time of logging.

# SentryLogger

[NewSentryLogger] wraps a [StdLogger], forwarding the [LogContext.Error]
of Warn, Error and Fatal logs to Sentry.
*/
package logger
