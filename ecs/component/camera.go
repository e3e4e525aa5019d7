package component

import "github.com/milk9111/platformer/camera"

// CameraComponent stores the view controller. It follows the first entity
// tagged with PlayerTag.
var CameraComponent = NewComponent[camera.Controller]()
