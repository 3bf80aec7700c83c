// Package validator provides a small declarative engine for validating tagged
// records before they are persisted: ordered field mappings are checked
// against per-kind rule sets and every failure is reported at once.
//
// The package promotes declarative validation by letting you build small Rule
// closures over a Record. Rules are evaluated with the Apply helper which
// aggregates failures into a ValidationErrors slice that satisfies the error
// interface, so a rejected record bubbles up as a single error carrying every
// field-level problem.
//
// # Architecture
//
// Core building blocks:
//   - Record            – ordered, read-only field mapping with typed accessors
//   - Rule              – closure checking one aspect of a record
//   - RuleSet           – ordered rules bound to one record kind, built at startup
//   - Registry          – kind-to-RuleSet dispatch table
//   - ValidationError   – one failure with a machine-readable code
//   - ValidationErrors  – slice type that implements the error interface
//
// Rule sets are immutable after construction and Records are call-local, so
// any number of validations may run concurrently over a shared Registry.
//
// Rules run in declaration order and are never short-circuited: a record
// violating three rules reports three errors. A rule whose precondition is
// unmet (an optional field left unset) is skipped rather than failed. A rule
// that dereferences an absent field reports a missing_field error naming the
// field instead of crashing.
//
// # Usage
//
//	rules := validator.NewRuleSet("task",
//	    validator.RequiredString("name"),
//	    validator.RequiredString("description"),
//	    validator.DateOrdered("creation_date", "deletion_date"),
//	)
//
//	err := rules.Validate(ctx, rec)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // rejected: iterate field-level errors
//	} else if err != nil {
//	    // a collaborator (existence lookup, image probe) failed
//	}
//
// # Error Handling
//
// Validation verdicts and infrastructure failures stay separate: rule
// failures accumulate into ValidationErrors, while an error from an external
// collaborator aborts the pass and is returned untouched. Use
// IsValidationError or ExtractValidationErrors to tell them apart.
//
// Expensive checks such as database lookups are not implemented here; adapt
// them into a Rule in the package that owns the collaborator.
package validator
