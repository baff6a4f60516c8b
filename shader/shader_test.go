package shader

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanCounts(t *testing.T) {
	// The default octagon loops 10 times and re-emits the center on the
	// five even iterations.
	assert.Equal(t, 10, FanIterations(8))
	assert.Equal(t, 15, FanVertexCount(8))

	assert.Equal(t, 5, FanIterations(3))
	assert.Equal(t, 8, FanVertexCount(3))

	assert.LessOrEqual(t, FanVertexCount(DefaultSegments), MaxGeometryVertices)
}

func TestGeometryShaderSource(t *testing.T) {
	src, err := GeometryShader(8, 0.01)
	require.NoError(t, err)

	assert.Contains(t, src, "layout(points) in;")
	assert.Contains(t, src, fmt.Sprintf("max_vertices = %d", MaxGeometryVertices))
	assert.Contains(t, src, "triangle_strip")
	assert.Contains(t, src, "int n = 8;")
	assert.Contains(t, src, "uniform ivec2 Resolution;")
	assert.NotContains(t, src, "%d")
	assert.NotContains(t, src, "%f")
	assert.Contains(t, src, "j % 2 == 0")
}

func TestGeometryShaderSegmentValidation(t *testing.T) {
	_, err := GeometryShader(2, 0.01)
	assert.Error(t, err)

	// 62 segments emit exactly the 96-vertex budget; 63 exceed it.
	require.Equal(t, MaxGeometryVertices, FanVertexCount(62))
	_, err = GeometryShader(62, 0.01)
	assert.NoError(t, err)
	_, err = GeometryShader(63, 0.01)
	assert.Error(t, err)
}

func TestStageSources(t *testing.T) {
	assert.Contains(t, VertexShader(), "uniform mat4 MVP;")
	assert.Contains(t, VertexShader(), "vec4(vPos, 0.0, 1.0)")
	assert.Contains(t, FragmentShader(), "0.05")
}
