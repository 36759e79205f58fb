// Package commands implements the bookshelfctl command tree: offline lookups
// against the status registries, route guard and field validators, plus a
// few calls against a running bookstore backend.
package commands
