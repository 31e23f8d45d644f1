// Profiling:
//
//	go build ./profile/propagate
//	go tool pprof -http=":8000" ./propagate cpu.pprof
package main

import (
	"github.com/akmonengine/scenegraph"
	"github.com/akmonengine/scenegraph/pose"
	"github.com/pkg/profile"
)

const (
	rootCount = 100
	depth     = 6
	fanout    = 3
	iters     = 500
)

func main() {
	defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()

	world := scenegraph.NewWorld()
	world.Workers = 4

	roots := make([]scenegraph.Entity, 0, rootCount)
	for i := 0; i < rootCount; i++ {
		root := world.Spawn(pose.FromXYZ(float64(i), 0, 0))
		roots = append(roots, root)
		grow(world, root, depth)
	}
	world.Update()

	for i := 0; i < iters; i++ {
		// Move every root; the whole forest recomputes top-down.
		for j, root := range roots {
			world.SetTransform(root, pose.FromXYZ(float64(j), float64(i), 0))
		}
		world.Update()
	}
}

func grow(world *scenegraph.World, parent scenegraph.Entity, levels int) {
	if levels == 0 {
		return
	}
	for i := 0; i < fanout; i++ {
		child := world.Spawn(pose.FromXYZ(0, 1, float64(i)))
		if err := world.SetParent(child, parent); err != nil {
			panic(err)
		}
		grow(world, child, levels-1)
	}
}
