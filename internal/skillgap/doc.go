// Package skillgap holds the pure policy functions behind roadmap generation:
// proficiency blending, gap classification, dependency bonuses, priority
// scoring and assessment difficulty. Nothing in this package performs I/O;
// callers pass read-only catalog snapshots in and persist the results.
package skillgap
