// Package kv provides the durable key/value substrate behind the preference,
// session, history and credential stores.
//
// Two implementations are available: SQLiteRepository, persisted in a table
// created by the embedded migrations, and MemoryRepository, used for
// process-scoped session data and in tests.
package kv
