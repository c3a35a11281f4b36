// Package prometheus renders feedgate counters in Prometheus text
// exposition format.
//
// [NewExporter] accepts a [feedgate.Service] and exposes an
// [http.Handler]. Counter names are prefixed feedgate_*_total. The
// package never registers with a global Prometheus registry; callers
// mount the Handler themselves.
package prometheus
