// Package domain defines the core types of the GNS3 inventory.
//
// The package has no I/O: it models what the controller reports and what
// Ansible consumes, and nothing else.
//
// # Controller Types
//
// Project is a named lab on the controller. Node is one emulated device in a
// project together with the console address GNS3 exposes for it.
//
// # Inventory Types
//
// Inventory holds hosts, their variables and the groups they belong to, in the
// shape Ansible expects from a dynamic inventory source. Host and group order
// is stable so that two builds over the same controller state render
// identically.
package domain
