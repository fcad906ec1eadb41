// Package shaders provides the embedded default GLSL sources.
package shaders

import _ "embed"

// PhongVertexShader transforms the figure by the "model" uniform and passes
// world-space position, normal and uv to the fragment stage.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader lights the figure with one attenuated point light,
// sampling diffuse and specular maps.
//
//go:embed phong.frag
var PhongFragmentShader string
