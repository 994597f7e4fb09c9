// Package loader provides the feature loading system of the puzzle gateway.
//
// Each feature implements the Feature interface, which names it, tells whether
// it is enabled and registers its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry and loads every enabled feature with LoadAll.
package loader
