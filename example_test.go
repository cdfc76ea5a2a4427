package switchboard_test

import (
	"context"
	"fmt"

	"github.com/aretw0/switchboard"
	"github.com/aretw0/switchboard/pkg/adapters/memory"
	"github.com/aretw0/switchboard/pkg/domain"
)

func Example() {
	registry := memory.NewRegistry(
		&domain.Component{
			Name:       "order",
			Components: []*domain.Component{{Name: "payment"}},
		},
	)
	registry.Register("order", domain.HandlerDescriptor{
		Key:           "Start",
		GlobalIntents: []string{"OrderIntent"},
	})
	registry.Register("order.payment", domain.HandlerDescriptor{
		Key:     "Confirm",
		Intents: []string{"YesIntent"},
	})

	router := switchboard.New(registry, registry)

	route, err := router.Route(context.Background(), switchboard.Request{
		Intent: "YesIntent",
		Stack:  []domain.StateEntry{{Path: "order.payment"}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s at %s\n", route.HandlerKey, route.ComponentPath())
	// Output: Confirm at order.payment
}
