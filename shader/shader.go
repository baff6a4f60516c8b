package shader

import "fmt"

// MaxGeometryVertices is the max_vertices budget declared by the geometry
// stage. It leaves headroom for segment counts well beyond the default
// octagon.
const MaxGeometryVertices = 96

const (
	DefaultSegments  = 8
	DefaultPointSize = 0.01
)

// ────────────────────────────────── Stage sources ──────────────────────────────────

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec2 vPos;
uniform mat4 MVP;
void main() {
    gl_Position = MVP * vec4(vPos, 0.0, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
out vec4 fragColor;
void main() {
    vec3 color = vec3(1.0, 0.0, 0.0);
    fragColor = vec4(color, 0.05);
}
`

// The geometry stage fans each input point into a regular n-gon emitted as a
// triangle strip, re-emitting the center on even iterations. The x offset is
// scaled by Resolution.y/Resolution.x so the shape stays circular under
// non-square viewports.
const geometryShaderTemplate = `#version 410 core
layout(points) in;
layout(triangle_strip, max_vertices = %d) out;
uniform ivec2 Resolution;
#define M_PI 3.1415926535897932384626433832795
void main() {
    float d = %f;
    int n = %d;
    float xs = float(Resolution.y) / float(Resolution.x);
    for (int j = 0; j < n + 2; j++) {
        if (j %% 2 == 0) {
            gl_Position = gl_in[0].gl_Position;
            EmitVertex();
        }
        float theta = float(j) * (2.0 * M_PI / float(n));
        gl_Position = gl_in[0].gl_Position + vec4(d * cos(theta) * xs, d * sin(theta), 0.0, 0.0);
        EmitVertex();
    }
    EndPrimitive();
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

func VertexShader() string { return vertexShaderSource }

func FragmentShader() string { return fragmentShaderSource }

// GeometryShader builds the fan-expansion source for the given segment count
// and point radius. The segment count is validated against the stage's
// vertex budget.
func GeometryShader(segments int, size float32) (string, error) {
	if segments < 3 {
		return "", fmt.Errorf("segments must be at least 3, got %d", segments)
	}
	if c := FanVertexCount(segments); c > MaxGeometryVertices {
		return "", fmt.Errorf("%d segments would emit %d vertices, budget is %d",
			segments, c, MaxGeometryVertices)
	}
	return fmt.Sprintf(geometryShaderTemplate, MaxGeometryVertices, size, segments), nil
}

// FanIterations is the number of emission loop iterations per input point.
func FanIterations(segments int) int {
	return segments + 2
}

// FanVertexCount is the total number of vertices the geometry stage emits
// per input point: one ring vertex per iteration plus a center re-emission
// on every even iteration.
func FanVertexCount(segments int) int {
	it := FanIterations(segments)
	return it + (it+1)/2
}
