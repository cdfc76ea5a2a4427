/*
Package ports defines the interfaces between the Switchboard core and its
collaborators (the "Host" application).

The component registry, descriptor store, and alias map are owned by the
host and consumed by the router as read-only inputs. Adapters under
pkg/adapters provide reference implementations; package ports/tests offers
reusable contract suites adapters should pass.
*/
package ports
