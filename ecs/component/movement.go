package component

// Movement holds the controller tunables for an input-driven actor.
type Movement struct {
	Speed        float64
	JumpVelocity float64
	ClampToLevel bool
}

var MovementComponent = NewComponent[Movement]()
