// Package server exposes grid route planning over HTTP and WebSocket.
//
// Routes:
//
//	GET  /v1/path?cols=&rows=&start_x=&start_y=&end_x=&end_y=&obstacle_ratio=&seed=
//	POST /v1/path         {"cols":5,"rows":5,"start":[0,0],"end":[4,4],"obstacles":[[1,1]]}
//	GET  /v1/path/stream  WebSocket: one request in, settle messages and a result out
//	GET  /status          liveness
//	GET  /metrics         Prometheus metrics
//
// Every request builds its own grid, so requests never share search state.
// Construction errors answer 400, an exhausted expansion budget answers 422.
// A goal that cannot be reached is a normal 200 response with "found": false.
package server
