// Package server provides HTTP routing, middleware, and the handlers of the lyrics web service.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Routes
//
// [New] wires the application:
//   - GET /health : {"ok":true}
//   - GET /api/lyrics?artist=&title= : [LyricsHandler]
//   - GET /api/spotify/search?q=&limit= and GET /api/spotify/track/{id} : [CatalogHandler]
//   - POST /api/analyze : [AnalyzeHandler]
//   - GET /metrics : Prometheus exposition, when configured
//   - GET / : [StaticHandler] for the web frontend
//
// Errors are JSON bodies of the form {"error":"code","message":"…"} ([ErrorResponse]).
//
// # Middleware
//
// [RequestID] tags each request with X-Request-ID, [AccessLog] writes one log line per request and
// [Recovery] converts panics into 500 responses.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Lifecycle
//
// [Serve] runs an [http.Server] until its context is cancelled and then shuts it down gracefully.
package server
