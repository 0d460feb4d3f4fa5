// Package registry is the type registry and parser-descriptor table at the
// heart of the data parser.
//
// # Overview
//
// A Type is a closed, process-wide enum identifying one parser. Find looks
// up the immutable Descriptor registered for a Type; Parse and Dump are the
// two top-level entry points every REST endpoint in the controller calls
// through, dispatching on the descriptor's Model.
//
// Descriptors are built by generic constructors (SimpleDescriptor,
// ComplexDescriptor, FlagArrayDescriptor here; Descriptor in
// package composite and the container descriptors in package container)
// rather than by hand-filling struct literals, so that each one carries a
// correctly-typed parse/dump closure without any unsafe pointer or byte
// offset arithmetic — the Go replacement for the source project's
// offset-addressed C field tables.
//
// # Registration
//
// Every descriptor is registered exactly once, at package init time, by the
// package that owns the corresponding Go type (typically package model).
// SelfCheck re-validates every table invariant and returns the first
// violation as an error; package model's tests call it and fail on a
// non-nil result. Violations represent programming mistakes in the
// registry table, not runtime failures.
package registry
