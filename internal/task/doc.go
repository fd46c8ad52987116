// Package task runs one exposure pass over a set of libraries: it prepares
// the resource root, picks the expose method, exposes every library that
// needs it and records the method in the .method marker for the next run.
//
// A pass is synchronous and processes libraries in the order given. No
// locking is done; callers must not run two passes against the same
// resource root at once.
package task
