// Package docview provides an embeddable engine for browsing and searching
// a fixed corpus of pre-rendered documentation pages. It retrieves pages
// over HTTP or straight from a local directory, keeps a session-local
// navigation stack bridged to the host's history, and serves ranked
// full-text search over a pre-built corpus manifest.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, bleve/, goquery/).
package docview
