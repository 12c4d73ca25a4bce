// Package reportcache provides efficiency.Cache implementations: an
// in-process TTL map and a SQLite table for reports shared across runs.
package reportcache
