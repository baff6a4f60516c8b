package renderer

import "github.com/go-gl/mathgl/mgl32"

// Projection returns the demo's orthographic projection for a viewport of
// the given size: y spans [-1, 1] and x spans [-ratio, ratio], so a unit
// circle stays circular regardless of the window's aspect ratio.
func Projection(width, height int) mgl32.Mat4 {
	ratio := float32(width) / float32(height)
	return mgl32.Ortho(-ratio, ratio, -1, 1, 1, -1)
}

// Rotation returns the Z-axis rotation for the given angle in radians. The
// render loop feeds it elapsed wall-clock time for a continuous spin.
func Rotation(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(angle)
}

// MVP combines projection and rotation into the matrix the vertex stage
// consumes.
func MVP(width, height int, angle float32) mgl32.Mat4 {
	return Projection(width, height).Mul4(Rotation(angle))
}

// TransformPoint applies m to a 2D point at z=0, w=1 and returns the
// resulting clip-space x/y.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec2) mgl32.Vec2 {
	v := m.Mul4x1(mgl32.Vec4{p.X(), p.Y(), 0, 1})
	return mgl32.Vec2{v.X(), v.Y()}
}
