// Package openapi exports record types as OpenAPI component schemas and reads
// them back. Each schema carries the full field definition in the
// x-specform-definition extension so a document round trips without loss;
// the standard keywords (required, readOnly, maxLength, enum, array items)
// describe the same constraints to generic OpenAPI tooling.
package openapi
