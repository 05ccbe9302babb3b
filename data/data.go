// Package data holds the row types stored in the sqlite database.
//
// See db/schema.sql for the tables behind these types and the uniqueness
// constraints that make inserts idempotent.
package data
