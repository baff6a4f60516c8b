package renderer

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	shader "github.com/glowfield/megapoints/shader"
)

// newProgram compiles and links the three-stage point pipeline. Any failure
// is fatal to the caller; there is no fallback program.
func newProgram(segments int, size float32) (uint32, error) {
	geometrySource, err := shader.GeometryShader(segments, size)
	if err != nil {
		return 0, err
	}

	vertexShader, err := compileShader(shader.VertexShader(), gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	geometryShader, err := compileShader(geometrySource, gl.GEOMETRY_SHADER, "geometry")
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(shader.FragmentShader(), gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, geometryShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("link: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(geometryShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader tags failures with the stage name so the driver's info log
// can be traced back to a source.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("%s: %v", stage, infoLog)
	}
	return sh, nil
}
