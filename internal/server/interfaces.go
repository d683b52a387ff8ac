package server

// Server is the lifecycle contract of the HTTP transport. RunServer blocks
// until a shutdown signal arrives or serving fails; Shutdown drains in-flight
// requests and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
