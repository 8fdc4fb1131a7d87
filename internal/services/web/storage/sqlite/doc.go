// Package sqlite provides a SQLite-backed web service store.
//
// A single service-owned file holds every table so school structure, student
// records, and grading share one transaction boundary.
package sqlite
