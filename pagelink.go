// Package pagelink provides a CLI tool that turns the page currently
// open in a running Chrome browser into a paste-ready link. Site-specific
// handlers extract a human-readable title and canonical URL from the live
// page, and the result is written to the OS clipboard in two synchronized
// representations (an HTML hyperlink and plain text). Activating the tool
// twice within a short window toggles between the coarse page link and a
// detailed sub-location link (a heading, a pipeline execution).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package pagelink
