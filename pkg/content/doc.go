// Package content declares the validation rule sets for the data-entry layer
// of a community content platform: FAQs, resources, tasks, topics, tags, the
// join records between them, and uploaded images.
//
// Each record kind gets one ordered RuleSet mirroring what the persistence
// schema cannot express on its own: field emptiness, cross-record existence,
// date ordering, flag/date consistency, and upload integrity. NewRegistry
// wires them all against the two collaborators the rules depend on, the
// lookup.Checker for referential integrity and the imagecheck.Prober for
// decode probing.
//
//	reg := content.NewRegistry(content.Deps{
//	    Lookup: checker,
//	    Prober: imagecheck.NewDecodeProber(),
//	})
//	err := reg.Validate(ctx, content.KindTask, rec)
//
// Rule order within a set follows the order the checks are documented in,
// and every failing rule reports: a task with a blank name and reversed
// dates is rejected with both errors at once.
package content
