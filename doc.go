/*
Package platter implements a rotating-disk simulator in pure Go. It models
seek and rotation costs for a configurable disk geometry, services track
request queues under FCFS, SSTF, LOOK and segmented-LFU policies, and layers
a block-addressed file store with a write-through buffer cache and a bounded
request-admission gate on top of the same geometry.
*/
package platter
