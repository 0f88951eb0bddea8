/*
Package domain contains the core value types of the packing assistant:
checklist definitions, per-user sessions, dispositions, engine events and
the rendering instructions produced by transitions.

The package is dependency-free so that every adapter (transport, storage,
presentation) can share these types without pulling in anything else.
*/
package domain
