// Package building is the read-only view of a building model consumed by
// the evacuation engine.
//
// What:
//
//   - Space, Door, Storey: the entities the engine needs, with the level
//     label shared between doors, spaces and storeys.
//   - Provider: the interface the engine reads from. *Model implements it;
//     other model sources (an IFC bridge, a database) can too.
//   - Adjacency: door ↔ space relations, derived from explicit space
//     boundaries and transitively through door → opening → wall → boundary.
//   - Load / Decode: a JSON document format for models.
//
// Iteration order everywhere is the order of the source document, which
// keeps runs reproducible.
//
// Errors:
//
//   - ErrInvalidModel: malformed document, empty or duplicate IDs.
package building
