package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Line vertex shader: board-space polyline vertices with per-vertex colour.
const lineVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 screenPos = (aPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const lineFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Sprite vertex shader: point sprites with per-vertex pos/size/color/rotation.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
out float vRotation;

void main() {
    vec2 screenPos = (aPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uZoom + 0.5));
    vColor = aColor;
    vRotation = aRotation;
}
` + "\x00"

// Sprite fragment shader: round dot with a brighter wedge pointing along
// the rotation, so the head shows which way it is sweeping.
const spriteFragSrc = `#version 410 core

in vec4 vColor;
in float vRotation;
out vec4 FragColor;

void main() {
    vec2 p = gl_PointCoord * 2.0 - 1.0;
    p.y = -p.y;
    float r = length(p);
    if (r > 1.0) discard;
    vec2 dir = vec2(cos(vRotation), -sin(vRotation));
    float nose = smoothstep(0.4, 0.9, dot(normalize(p + 1e-5), dir)) * step(0.35, r);
    vec3 col = mix(vColor.rgb, vec3(1.0), nose * 0.45);
    float edge = 1.0 - smoothstep(0.85, 1.0, r);
    FragColor = vec4(col, vColor.a * edge);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
