// Package podnote turns podcast-episode web pages into markdown notes.
// It classifies a URL by hosting service, applies a per-service extraction
// strategy against the page HTML, and renders the resulting episode
// metadata into a user-defined placeholder template.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package podnote
