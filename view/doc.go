// Package view implements the fixed-length, non-owning array descriptor.
//
// A View is the runtime's fat pointer: base plus length over storage that
// something else owns. Generated code uses it for fixed-size array
// parameters and for windows into list storage. Because it never owns, it
// has no free operation and must not outlive the memory it describes.
package view
