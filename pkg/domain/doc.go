/*
Package domain contains the core domain models for the Switchboard router.

It defines the fundamental entities of intent routing: the Component tree,
Handler Descriptors, the conversational State Stack, and the resolved Route.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Component: A named node in the application's component tree.
  - HandlerDescriptor: A handler declaration (intents, sub-state, platforms, guard).
  - StateEntry: One frame of the conversational call stack.
  - Match: An ephemeral routing candidate produced during one resolution.
  - Route: The resolved locator (path + handler key + sub-state).
*/
package domain
