// Package domain defines the core entities of the shopping list service
// and the errors shared across its layers.
package domain
