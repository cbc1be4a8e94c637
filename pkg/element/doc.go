// Package element provides the node model for building HTML trees.
//
// The variant set is closed: Text, Image, Container and Raw implement
// the sealed Element interface, and the renderer dispatches exhaustively
// over them. Each node exclusively owns its children and attribute data,
// so trees are acyclic by construction.
//
// # Builder API
//
// Nodes are created with constructors and configured with chainable
// With* methods:
//
//	element.NewContainer("div").
//	    WithID("main").
//	    WithClass("content").
//	    WithText("Hello World!")
//
// Builders store raw strings; nothing is escaped until the tree is
// rendered. A built tree renders deterministically any number of times.
package element
