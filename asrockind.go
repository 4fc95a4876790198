// Package asrockind provides an MCP server exposing a product-search tool
// over the ASRock Industrial catalog. It scrapes the catalog with a headless
// browser when one is available and falls back to plain HTTP fetching plus
// static HTML parsing when it is not.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, http/, mcp/).
package asrockind
