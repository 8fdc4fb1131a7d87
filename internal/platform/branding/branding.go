// Package branding centralizes product identity strings so services and
// templates stay consistent when the name changes.
package branding

// AppName is the user-facing product name.
const AppName = "School Desk"

// Domain is the canonical host the product is served from.
const Domain = "theschooldesk.app"

// SupportEmail is the address surfaced on help and error pages.
const SupportEmail = "support@" + Domain
