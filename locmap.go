// Package locmap locates the XML sitemaps advertised by web sites.
// It runs a prioritized chain of discovery providers, caches the result
// per site language, and validates that located sitemaps are reachable.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, fiber/).
package locmap
