package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/scenegraph"
	"github.com/akmonengine/scenegraph/pose"
	"github.com/go-gl/mathgl/mgl64"
)

// A three-level hierarchy: the moon orbits the planet, the planet orbits the
// sun. Only local poses are written; Update derives the world positions.
func main() {
	world := scenegraph.NewWorld()

	sun := world.Spawn(pose.Identity())
	planet := world.Spawn(pose.FromXYZ(10, 0, 0))
	moon := world.Spawn(pose.FromXYZ(2, 0, 0))

	if err := world.SetParent(planet, sun); err != nil {
		panic(err)
	}
	if err := world.SetParent(moon, planet); err != nil {
		panic(err)
	}

	const steps = 8
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / steps

		// The planet swings around the sun, the moon keeps its local orbit.
		world.SetTransform(planet, pose.FromXYZ(10*math.Cos(angle), 0, 10*math.Sin(angle)))

		world.Update()

		planetPos := worldPosition(world, planet)
		moonPos := worldPosition(world, moon)
		fmt.Printf("step %d: planet=(%6.2f, %6.2f)  moon=(%6.2f, %6.2f)\n",
			i, planetPos.X(), planetPos.Z(), moonPos.X(), moonPos.Z())
	}
}

func worldPosition(world *scenegraph.World, e scenegraph.Entity) mgl64.Vec3 {
	g, ok := world.GlobalTransform(e)
	if !ok {
		panic("entity has no world transform")
	}
	return g.Translation()
}
