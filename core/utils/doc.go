// Package utils provides common utility functions for the usermap reconciler.
// It includes helpers for converting loosely typed decoded values (YAML scalars)
// that don't fit into domain-specific packages.
package utils
