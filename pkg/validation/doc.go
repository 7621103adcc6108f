// Package validation checks structured records against spec definitions.
// Parsing never validates, so callers that want to reject a record before
// submitting it run Validate explicitly.
package validation
