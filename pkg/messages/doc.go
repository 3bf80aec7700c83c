// Package messages renders validation error codes into human-readable text.
//
// Message text is a pure function of (error code, locale): the Catalog holds
// templates keyed by both, interpolates "{name}" placeholders from an error's
// TranslationValues, and falls back to the default locale and finally to the
// bare code when a template is absent. There is no global state; callers
// construct a Catalog at startup and treat it as read-only configuration.
//
// # Usage
//
//	catalog, err := messages.New(
//	    messages.WithYAML(deCatalogFile),
//	)
//	...
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    payload := catalog.Localize("de", verrs)
//	    // serialize payload in the response body
//	}
//
// English defaults for the entire taxonomy ship with the package; additional
// locales are merged in from maps or YAML documents at construction time.
package messages
