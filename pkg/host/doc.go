// Package host defines the capability set paneui needs from a display host.
//
// Widgets never talk to a concrete rendering engine. They create nodes,
// read and write properties, parent and destroy nodes, and subscribe to
// input events through the [Host] and [Node] interfaces. A host binding
// (see the memhost and termhost packages) is a swappable adapter.
//
// Properties are typed per node kind. The [Schema] lists which properties a
// kind accepts and what Go type each value must have; hosts reject anything
// else with an [errors.PropertyError].
package host
