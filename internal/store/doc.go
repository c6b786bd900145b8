// Package store provides persistent storage for coven-board using SQLite.
//
// # Data Models
//
//   - User: Registered account with a unique login identifier and bcrypt
//     password hash
//   - Post: Board post with title, markdown content, and optional image URL
//   - Comment: Threaded comment on a post; parent_id links replies
//
// Posts and comments carry the author's login identifier and display name
// on reads via an explicit JOIN, so ownership checks read the stored owner
// field directly instead of traversing an object graph.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// # Cascading Deletes
//
// Referential cleanup is a storage concern handled by foreign key cascade
// rules: deleting a user deletes their posts and comments, deleting a post
// deletes its comments, and deleting a comment deletes its replies.
//
// # Error Handling
//
//   - ErrNotFound: Requested entity does not exist
//   - ErrDuplicateUser: Login identifier already taken
//
// All methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewSQLiteStore with a t.TempDir() path for integration tests.
package store
