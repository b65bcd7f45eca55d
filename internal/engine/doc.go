// Package engine holds the entity/spawn/step/collide building blocks shared by
// the arcade games. Entities are plain records owned by each game; the functions
// here operate on their fields without knowing the concrete entity types.
package engine
