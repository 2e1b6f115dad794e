// Package wprefactor migrates WordPress-exported HTML pages into a simple
// static-template format. It extracts the main content region of each page,
// strips editor and vendor artifacts, rewrites asset paths, and re-wraps the
// result in a fixed page shell with shared header/nav/footer placeholders.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, yaml/).
package wprefactor
