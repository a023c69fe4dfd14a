// Package openapi exports a compiled field registry as an OpenAPI 3 object
// schema using kin-openapi, so the same field definitions can drive API
// documentation or client side validation.
package openapi
