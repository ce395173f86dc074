// Package harness builds the shotbook binary and runs it against an isolated
// SHOTBOOK_HOME so each test gets its own database and settings.
//
// Environment variables managed:
//   - SHOTBOOK_HOME: temp directory per test
//   - SHOTBOOK_DEBUG: disabled to keep stderr clean
//   - SHOTBOOK_DB_DRIVER, SHOTBOOK_DB_DSN: cleared so the sqlite default is used
package harness
