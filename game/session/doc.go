// Package session provides in-memory session storage for the solitaire server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Idle session expiry
//
// Core Types:
//
// Manager stores service.Session values, each owning its own engine instance
// and metadata like creation time and last access time. Sessions live only in
// memory; restarting the server discards them.
//
// Session Identifiers:
//
// Generated IDs are 4 lowercase hex characters from crypto/rand. Lookups are
// case-insensitive. Callers may also pick their own IDs.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
//	go manager.RunCleanup(ctx, time.Minute, 2*time.Hour, logger)
package session
