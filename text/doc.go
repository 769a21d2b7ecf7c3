// Package text provides post-reconstruction text operations: cleanup of
// common recognition artifacts, regex-based structured entity extraction,
// and summary statistics. Each operation consumes the final reconstructed
// text independently; none depends on another having run first.
package text
