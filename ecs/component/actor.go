package component

import "github.com/milk9111/platformer/physics"

// ActorComponent stores the physics body of a moving entity.
var ActorComponent = NewComponent[physics.Actor]()
