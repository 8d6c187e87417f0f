// Package service builds the Ansible inventory from controller data.
//
// InventoryService runs the single linear pipeline of the module: resolve the
// configured project, list its nodes, then hand them to BuildInventory. The
// last step is pure, so everything about host naming, port translation and
// grouping is testable without a controller.
//
// # Port Translation
//
// GNS3 reports the console (usually telnet) port of each node. Many lab
// images listen for SSH on a port at a fixed distance from it, so the
// configured port_offset is added as is: no clamping, negative values allowed.
// Whether the offset makes sense for a given node is the operator's call.
package service
