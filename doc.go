/*
Package switchboard resolves classified conversational intents to exactly
one registered handler, or reports that none applies.

Given an intent name and the session's current state stack, the router
searches a hierarchical tree of components for matching handler
declarations, honoring intent aliases, sub-state labels, platform
allow-lists, and dynamic guard predicates. The search order encodes a
"most specific wins" policy: the currently active conversational context
first, then the whole tree, then the catch-all UNHANDLED fallback.

Switchboard owns only the resolution step. Classifying raw input into an
intent, persisting conversational state, and executing the chosen handler
are the host application's concern ("Hexagonal Architecture"): the
component registry, descriptor store, state stack, and alias map reach the
router through the interfaces in pkg/ports.

# Usage

	registry := memory.NewRegistry(&domain.Component{
		Name: "order",
		Components: []*domain.Component{{Name: "payment"}},
	})
	registry.Register("order", domain.HandlerDescriptor{
		Key:           "Start",
		GlobalIntents: []string{"OrderIntent"},
	})
	registry.Register("order.payment", domain.HandlerDescriptor{
		Key:     "Confirm",
		Intents: []string{"YesIntent"},
	})

	router := switchboard.New(registry, registry)

	route, err := router.Route(ctx, switchboard.Request{
		Intent: "YesIntent",
		Stack:  []domain.StateEntry{{Path: "order.payment"}},
	})
	if err != nil {
		log.Fatal(err)
	}
	if route == nil {
		log.Println("no handler applies")
		return
	}
	log.Printf("dispatch %s at %s", route.HandlerKey, route.ComponentPath())

A nil route with a nil error means "no handler applies" and is not a
failure. Errors are reserved for broken inputs: a state-stack path that
does not exist in the registry, or a guard predicate that fails.
*/
package switchboard
