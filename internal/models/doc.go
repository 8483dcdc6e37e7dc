// Package models defines the core domain models for Budget Guru.
//
// Relationships are expressed as ID strings rather than pointers to avoid
// circular references. Closed sets (transaction kind, group category, asset
// type, recurring frequency) are typed string constants with parse functions;
// an out-of-set value is rejected at construction time, never carried around
// as a raw string.
//
// Derived values (balances, proposed settlements, budget spend figures) are
// never persisted; they are recomputed from transactions on every read.
package models
