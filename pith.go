// Package pith extracts the main content of an HTML document (the article
// or post body) and discards surrounding boilerplate such as navigation,
// comment threads, link lists, and ads. It works purely from document
// structure and word statistics; no layout engine or visual rendering is
// involved, so the result is heuristic and best-effort.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. The heuristic pipeline itself lives in distill/;
// other implementations live in subdirectories named after their primary
// dependency (e.g. html/, goquery/, sqlite/).
package pith
