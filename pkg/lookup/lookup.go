package lookup

import "context"

// Entity identifies a persisted entity kind for existence checks. References
// use lowercase singular names everywhere, no matter how the storage layer
// spells its tables or model classes.
type Entity string

const (
	EntityOrganization Entity = "organization"
	EntityResource     Entity = "resource"
	EntityTopic        Entity = "topic"
	EntityTag          Entity = "tag"
	EntityFormat       Entity = "format"
)

// Checker answers referential-integrity lookups against persisted data.
// Implementations must be safe for concurrent use; validation passes for
// independent requests share a single Checker.
type Checker interface {
	Exists(ctx context.Context, entity Entity, id int64) (bool, error)
}

// defaultTables maps entities to their table names in the content schema.
func defaultTables() map[Entity]string {
	return map[Entity]string{
		EntityOrganization: "organizations",
		EntityResource:     "resources",
		EntityTopic:        "topics",
		EntityTag:          "tags",
		EntityFormat:       "formats",
	}
}
