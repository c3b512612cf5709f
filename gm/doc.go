// Package gm (stands for geometry math) provides the few geometry primitives
// entities need: a 2d vector type called Vec and an angle type named Rad.
package gm
