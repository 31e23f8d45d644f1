package scenegraph

// Entity is a stable identifier for an object in a World. The version tag
// keeps identifiers from despawned entities from aliasing the entity that
// later reuses the same slot.
type Entity struct {
	ID      uint32
	Version uint32
}
