// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/departure, domain/opsproject,
// domain/timeline, domain/catalog). This root package holds sentinel errors,
// validation types, and the backoffice role model shared across all entities.
package domain
