// Package domain contains the core entities of the pet registry: users,
// the pets they own, and the catalog of pet types and pet properties. These
// types are free of infrastructure concerns so they can be shared between the
// storage backends, the registry operations and the API layer.
package domain
