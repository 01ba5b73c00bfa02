// Package native hosts the raw compression primitives behind textpack's
// codec adapters.
//
// Every primitive follows a single calling convention: on success it returns
// a *Buffer drawn from the shared buffer pool, on failure it returns nil and
// owns nothing. A non-nil Buffer is owned by the caller from the moment it is
// returned, and the caller must call Release exactly once to hand the backing
// storage back to the pool. The bytes inside a Buffer are only valid until
// Release; callers that need them longer must copy first.
//
// The compress package is the only intended consumer. Its bridge copies the
// bytes out and releases the buffer on every path, so no primitive output
// ever escapes the pool's lifecycle.
package native
