// Package favmeta looks up a website's favicons and page metadata.
// Given a user-supplied address it normalizes the URL, fetches the page HTML
// through a relay, extracts the title, keywords, description and icon
// declarations, and ranks the icons by declared size.
//
// This package contains domain types, interfaces and the pure pipeline
// functions following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, http/, rod/).
package favmeta
